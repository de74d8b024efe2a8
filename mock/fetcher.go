package mock

import (
	"context"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of polestudio.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
