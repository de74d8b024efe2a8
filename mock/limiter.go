package mock

import (
	"context"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of polestudio.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
