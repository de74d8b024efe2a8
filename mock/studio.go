package mock

import (
	"context"

	polestudio "github.com/hamudal/Hall-of-Pole-Version-6"
)

var _ polestudio.StudioService = (*StudioService)(nil)

// StudioService is a mock implementation of polestudio.StudioService.
type StudioService struct {
	CreateStudioFn   func(ctx context.Context, studio *polestudio.Studio) error
	FindStudioByIDFn func(ctx context.Context, id string) (*polestudio.Studio, error)
	FindStudiosFn    func(ctx context.Context, filter polestudio.StudioFilter) ([]*polestudio.Studio, error)
	DeleteStudioFn   func(ctx context.Context, id string) error
}

func (s *StudioService) CreateStudio(ctx context.Context, studio *polestudio.Studio) error {
	return s.CreateStudioFn(ctx, studio)
}

func (s *StudioService) FindStudioByID(ctx context.Context, id string) (*polestudio.Studio, error) {
	return s.FindStudioByIDFn(ctx, id)
}

func (s *StudioService) FindStudios(ctx context.Context, filter polestudio.StudioFilter) ([]*polestudio.Studio, error) {
	return s.FindStudiosFn(ctx, filter)
}

func (s *StudioService) DeleteStudio(ctx context.Context, id string) error {
	return s.DeleteStudioFn(ctx, id)
}
