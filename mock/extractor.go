package mock

import (
	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.StudioExtractor = (*StudioExtractor)(nil)

// StudioExtractor is a mock implementation of polestudio.StudioExtractor.
type StudioExtractor struct {
	ExtractFn func(html string) (*polestudio.Studio, []*polestudio.FieldError)
}

func (e *StudioExtractor) Extract(html string) (*polestudio.Studio, []*polestudio.FieldError) {
	return e.ExtractFn(html)
}
