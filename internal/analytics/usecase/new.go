package usecase

import (
	"retail-insights/internal/analytics"
	"retail-insights/internal/analytics/repository"
	"retail-insights/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ analytics.UseCase = (*implUseCase)(nil)

// New creates a new analytics UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
