package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/advisor/repository"
	"insurance-advisor/internal/model"
	"insurance-advisor/pkg/llmprovider"
)

// completeAssessment runs the terminal step exactly once: persist the
// answers, generate the recommendation, mark the session completed.
// Completion is monotonic; generation failure caches the apology instead.
func (uc *implUseCase) completeAssessment(ctx context.Context, sc model.Scope, session model.Session) advisor.ConverseOutput {
	// Persist before generating, so a generation failure never loses the
	// answers. Write failures are logged and do not block the reply.
	record := repository.AssessmentRecord{
		SessionID: session.ID,
		UserID:    sc.UserID,
		Answers:   session.Answers,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Append(ctx, record); err != nil {
		uc.l.Errorf(ctx, "%s: failed to persist assessment for session %s: %v",
			LogPrefixRecommend, session.ID, err)
	}

	recommendation, err := uc.generateRecommendation(ctx, session.Answers)
	if err != nil {
		uc.l.Errorf(ctx, "%s: generation failed for session %s: %v",
			LogPrefixRecommend, session.ID, err)
		recommendation = ApologyMessage
	}

	session.Completed = true
	session.AssessmentActive = false
	session.Recommendation = recommendation

	return advisor.ConverseOutput{
		Reply:   recommendation,
		Session: session,
		Hints:   model.DisplayHints{ShowScheduleForm: true},
	}
}

// generateRecommendation interpolates every answer and the static product
// catalog into the specialist template.
func (uc *implUseCase) generateRecommendation(ctx context.Context, answers map[string]model.Answer) (string, error) {
	profile := uc.buildProfile(answers)
	prompt := fmt.Sprintf(PromptRecommendUser, profile, ProductCatalog)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptRecommendSystem}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: RecommendTemperature,
		MaxTokens:   RecommendMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("recommendation generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty recommendation response")
	}
	return text, nil
}

// buildProfile renders the answers in question order with Vietnamese labels.
func (uc *implUseCase) buildProfile(answers map[string]model.Answer) string {
	var b strings.Builder
	for _, q := range uc.questions {
		answer, ok := answers[q.Key]
		if !ok {
			continue
		}
		label, ok := profileLabels[q.Key]
		if !ok {
			label = q.Key
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", label, answer.String()))
	}
	return strings.TrimRight(b.String(), "\n")
}
