package usecase

import (
	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/advisor/repository"
	"insurance-advisor/internal/product"
	"insurance-advisor/internal/router"
	"insurance-advisor/pkg/llmprovider"
	pkgLog "insurance-advisor/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       *llmprovider.Manager
	router    router.Router
	productUC product.UseCase
	repo      repository.AssessmentRepository
	questions []advisor.QuestionSpec
}

// New creates a new advisor UseCase instance. An empty questions slice
// selects the standard needs-assessment questionnaire.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	r router.Router,
	productUC product.UseCase,
	repo repository.AssessmentRepository,
	questions []advisor.QuestionSpec,
) *implUseCase {
	if len(questions) == 0 {
		questions = advisor.DefaultQuestions()
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		router:    r,
		productUC: productUC,
		repo:      repo,
		questions: questions,
	}
}
