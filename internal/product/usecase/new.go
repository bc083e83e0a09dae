package usecase

import (
	"insurance-advisor/internal/product/repository"
	"insurance-advisor/pkg/llmprovider"
	pkgLog "insurance-advisor/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  *llmprovider.Manager
	repo repository.PassageRepository
}

// New creates a new product UseCase instance.
func New(l pkgLog.Logger, llm *llmprovider.Manager, repo repository.PassageRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
	}
}
