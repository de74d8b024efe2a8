package mock

import (
	"context"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of polestudio.RecordWriter.
type RecordWriter struct {
	WriteStudioFn func(ctx context.Context, studio *polestudio.Studio) error
	FlushFn       func() error
}

func (w *RecordWriter) WriteStudio(ctx context.Context, studio *polestudio.Studio) error {
	return w.WriteStudioFn(ctx, studio)
}

func (w *RecordWriter) Flush() error {
	return w.FlushFn()
}
