package usecase

import (
	"context"
	"strings"
	"time"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
	"insurance-advisor/internal/product"
)

// Converse processes one user turn. The session is threaded by value:
// mutations happen on the local copy and the new state is returned.
func (uc *implUseCase) Converse(ctx context.Context, sc model.Scope, input advisor.ConverseInput) (advisor.ConverseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return advisor.ConverseOutput{}, advisor.ErrEmptyInput
	}

	session := input.Session
	if session.ID == "" {
		session = model.NewSession()
	}

	uc.l.Infof(ctx, "%s: user=%s session=%s cursor=%d active=%t",
		LogPrefixConverse, sc.UserID, session.ID, session.Cursor, session.AssessmentActive)

	var out advisor.ConverseOutput

	// A questionnaire in flight consumes the turn directly; no classification.
	if session.AssessmentActive && !session.Completed {
		out = uc.submitAnswer(ctx, sc, session, input.Text)
	} else {
		out = uc.dispatch(ctx, sc, session, input.Text)
	}

	out.Session.UpdatedAt = time.Now()
	return out, nil
}

// dispatch classifies the message and routes it to the matching branch.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, session model.Session, text string) advisor.ConverseOutput {
	decision := uc.router.Classify(ctx, text)
	session.LastIntent = decision.Intent

	uc.l.Infof(ctx, "%s: intent=%s confidence=%d", LogPrefixConverse, decision.Intent, decision.Confidence)

	switch decision.Intent {
	case model.IntentPurchase:
		return uc.startAssessment(sc, session)

	case model.IntentRecommendationRequest:
		return uc.recommendationRequest(ctx, sc, session)

	case model.IntentProductInfo:
		return uc.productInfo(ctx, session, text)

	default: // general_interest
		return advisor.ConverseOutput{
			Reply:   uc.smallTalk(ctx, text),
			Session: session,
		}
	}
}

// recommendationRequest serves a direct ask for recommendations: cached
// result when complete, regeneration over partial answers when some exist,
// questionnaire start otherwise.
func (uc *implUseCase) recommendationRequest(ctx context.Context, sc model.Scope, session model.Session) advisor.ConverseOutput {
	if session.Completed {
		return uc.completedOutput(session)
	}

	if len(session.Answers) > 0 {
		recommendation, err := uc.generateRecommendation(ctx, session.Answers)
		if err != nil {
			uc.l.Errorf(ctx, "%s: generation failed for session %s: %v",
				LogPrefixRecommend, session.ID, err)
			recommendation = ApologyMessage
		}
		return advisor.ConverseOutput{
			Reply:   recommendation,
			Session: session,
			Hints:   model.DisplayHints{ShowScheduleForm: true},
		}
	}

	// No answers yet: behave as purchase intent.
	return uc.startAssessment(sc, session)
}

// productInfo delegates to the retrieval-augmented product collaborator.
func (uc *implUseCase) productInfo(ctx context.Context, session model.Session, query string) advisor.ConverseOutput {
	out, err := uc.productUC.Answer(ctx, product.AnswerInput{Query: query})
	if err != nil {
		uc.l.Errorf(ctx, "%s: product answer failed: %v", LogPrefixConverse, err)
		return advisor.ConverseOutput{
			Reply:   SalesFallbackReply,
			Session: session,
		}
	}
	return advisor.ConverseOutput{
		Reply:   out.Answer,
		Session: session,
	}
}
