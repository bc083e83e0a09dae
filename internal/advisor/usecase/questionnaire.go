package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
)

// startAssessment enters the questionnaire and returns the current
// question's prompt. The cursor does not move.
func (uc *implUseCase) startAssessment(sc model.Scope, session model.Session) advisor.ConverseOutput {
	// A completed session is never restarted here; the cached
	// recommendation is returned instead.
	if session.Completed || session.Cursor >= len(uc.questions) {
		return uc.completedOutput(session)
	}

	session.AssessmentActive = true
	session.LastIntent = model.IntentPurchase

	reply := uc.promptFor(uc.questions[session.Cursor])
	if session.Cursor == 0 && len(session.Answers) == 0 {
		reply = WelcomeMessage + "\n\n" + reply
	}

	return advisor.ConverseOutput{
		Reply:   reply,
		Session: session,
		Hints: model.DisplayHints{
			Progress: &model.Progress{Current: session.Cursor + 1, Total: len(uc.questions)},
		},
	}
}

// submitAnswer processes one questionnaire answer: coerce by kind,
// re-prompt without advancing on validation failure, advance otherwise,
// and complete the assessment after the final question.
func (uc *implUseCase) submitAnswer(ctx context.Context, sc model.Scope, session model.Session, raw string) advisor.ConverseOutput {
	n := len(uc.questions)

	// Already complete: idempotent return of the cached recommendation.
	if session.Cursor >= n {
		return uc.completedOutput(session)
	}

	q := uc.questions[session.Cursor]
	answer, err := coerce(q, raw)
	if err != nil {
		uc.l.Infof(ctx, "%s: invalid answer for %s: %v", LogPrefixConverse, q.Key, err)
		return advisor.ConverseOutput{
			Reply:   err.Error() + "\n\n" + uc.promptFor(q),
			Session: session,
			Hints: model.DisplayHints{
				Progress: &model.Progress{Current: session.Cursor + 1, Total: n},
			},
		}
	}

	if session.Answers == nil {
		session.Answers = map[string]model.Answer{}
	}
	session.Answers[q.Key] = answer
	session.Cursor++

	if session.Cursor == n {
		return uc.completeAssessment(ctx, sc, session)
	}

	return advisor.ConverseOutput{
		Reply:   uc.promptFor(uc.questions[session.Cursor]),
		Session: session,
		Hints: model.DisplayHints{
			Progress: &model.Progress{Current: session.Cursor + 1, Total: n},
		},
	}
}

// completedOutput returns the cached recommendation without regenerating
// or re-persisting anything.
func (uc *implUseCase) completedOutput(session model.Session) advisor.ConverseOutput {
	session.AssessmentActive = false
	return advisor.ConverseOutput{
		Reply:   session.Recommendation,
		Session: session,
		Hints:   model.DisplayHints{ShowScheduleForm: true},
	}
}

// promptFor renders a question with its choices.
func (uc *implUseCase) promptFor(q advisor.QuestionSpec) string {
	switch q.Kind {
	case model.AnswerNumber:
		return fmt.Sprintf("%s (%d-%d)", q.Prompt, q.Min, q.Max)
	case model.AnswerSingle:
		return fmt.Sprintf("%s\n%s", q.Prompt, formatChoices(q.Choices))
	case model.AnswerMulti:
		return fmt.Sprintf("%s (you can pick several, separated by commas)\n%s", q.Prompt, formatChoices(q.Choices))
	default:
		return q.Prompt
	}
}

func formatChoices(choices []string) string {
	lines := make([]string, 0, len(choices))
	for i, c := range choices {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}
	return strings.Join(lines, "\n")
}

// coerce validates a raw answer against the question spec. It returns a
// typed answer or a user-facing validation error.
func coerce(q advisor.QuestionSpec, raw string) (model.Answer, error) {
	switch q.Kind {
	case model.AnswerNumber:
		return coerceNumber(q, raw)
	case model.AnswerSingle:
		return coerceSingle(q, raw)
	case model.AnswerMulti:
		return coerceMulti(q, raw)
	default:
		return model.Answer{}, fmt.Errorf("unsupported question kind %q", q.Kind)
	}
}

func coerceNumber(q advisor.QuestionSpec, raw string) (model.Answer, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return model.Answer{}, fmt.Errorf(ReplyNumberFormat)
	}
	// Out-of-range values are rejected, never clamped.
	if n < q.Min || n > q.Max {
		return model.Answer{}, fmt.Errorf(ReplyNumberBounds, q.Min, q.Max)
	}
	return model.NumberAnswer(n), nil
}

func coerceSingle(q advisor.QuestionSpec, raw string) (model.Answer, error) {
	raw = strings.TrimSpace(raw)
	for _, c := range q.Choices {
		if strings.EqualFold(raw, c) {
			return model.SingleAnswer(c), nil
		}
	}
	return model.Answer{}, fmt.Errorf(ReplySingleChoice, strings.Join(q.Choices, ", "))
}

// coerceMulti accepts either a JSON array (["a","b"]) or comma-separated
// tokens. Every token must match a choice; unknown tokens reject the input.
func coerceMulti(q advisor.QuestionSpec, raw string) (model.Answer, error) {
	raw = strings.TrimSpace(raw)

	var tokens []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &tokens); err != nil {
			return model.Answer{}, fmt.Errorf(ReplyMultiChoice, strings.Join(q.Choices, ", "))
		}
	} else if raw != "" {
		tokens = strings.Split(raw, ",")
	}

	selected := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		matched := ""
		for _, c := range q.Choices {
			if strings.EqualFold(token, c) {
				matched = c
				break
			}
		}
		if matched == "" {
			return model.Answer{}, fmt.Errorf(ReplyMultiChoice, strings.Join(q.Choices, ", "))
		}
		selected = append(selected, matched)
	}

	return model.MultiAnswer(selected), nil
}
