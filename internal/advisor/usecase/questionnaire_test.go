package usecase

import (
	"context"
	"strings"
	"testing"

	"insurance-advisor/internal/advisor"
	"insurance-advisor/internal/model"
)

// newAssessmentUseCase builds a usecase whose router always routes to
// purchase intent, so the first turn starts the questionnaire.
func newAssessmentUseCase(provider *countingProvider, repo *mockAssessmentRepo, questions []advisor.QuestionSpec) *implUseCase {
	return New(
		&mockLogger{},
		newManager(provider),
		&stubRouter{intent: model.IntentPurchase},
		&mockProductUC{answer: "n/a"},
		repo,
		questions,
	)
}

func converseTurn(t *testing.T, uc *implUseCase, session model.Session, text string) advisor.ConverseOutput {
	t.Helper()
	out, err := uc.Converse(context.Background(), model.Scope{UserID: "test_user"}, advisor.ConverseInput{
		Session: session,
		Text:    text,
	})
	if err != nil {
		t.Fatalf("unexpected error on turn %q: %v", text, err)
	}
	return out
}

func TestQuestionnaire_StartReturnsFirstQuestion(t *testing.T) {
	uc := newAssessmentUseCase(&countingProvider{text: "rec"}, &mockAssessmentRepo{}, nil)

	out := converseTurn(t, uc, model.NewSession(), "tôi muốn mua bảo hiểm")

	if !strings.Contains(out.Reply, WelcomeMessage) {
		t.Error("expected welcome message on first question")
	}
	if !strings.Contains(out.Reply, "How old are you?") {
		t.Errorf("expected first question prompt, got %q", out.Reply)
	}
	if !out.Session.AssessmentActive {
		t.Error("expected assessment to be active")
	}
	if out.Session.Cursor != 0 {
		t.Errorf("expected cursor 0 after start, got %d", out.Session.Cursor)
	}
	if out.Hints.Progress == nil || out.Hints.Progress.Current != 1 || out.Hints.Progress.Total != 7 {
		t.Errorf("unexpected progress hint: %+v", out.Hints.Progress)
	}
}

func TestQuestionnaire_OutOfRangeNumberReprompts(t *testing.T) {
	uc := newAssessmentUseCase(&countingProvider{text: "rec"}, &mockAssessmentRepo{}, nil)

	out := converseTurn(t, uc, model.NewSession(), "mua bảo hiểm")

	// Age 5 is below the [18,100] bounds: cursor must not advance and the
	// same question is asked again.
	out = converseTurn(t, uc, out.Session, "5")
	if out.Session.Cursor != 0 {
		t.Errorf("expected cursor unchanged at 0, got %d", out.Session.Cursor)
	}
	if !strings.Contains(out.Reply, "How old are you?") {
		t.Errorf("expected re-prompt of the age question, got %q", out.Reply)
	}
	if len(out.Session.Answers) != 0 {
		t.Errorf("expected no answer recorded, got %v", out.Session.Answers)
	}

	// Garbage input is rejected the same way.
	out = converseTurn(t, uc, out.Session, "thirty four")
	if out.Session.Cursor != 0 {
		t.Errorf("expected cursor unchanged at 0, got %d", out.Session.Cursor)
	}

	// A valid age advances.
	out = converseTurn(t, uc, out.Session, "34")
	if out.Session.Cursor != 1 {
		t.Errorf("expected cursor 1 after valid age, got %d", out.Session.Cursor)
	}
	if got := out.Session.Answers["Age"]; got.Number != 34 {
		t.Errorf("expected Age 34, got %+v", got)
	}
}

func TestQuestionnaire_SingleChoiceValidation(t *testing.T) {
	uc := newAssessmentUseCase(&countingProvider{text: "rec"}, &mockAssessmentRepo{}, nil)

	out := converseTurn(t, uc, model.NewSession(), "mua bảo hiểm")
	out = converseTurn(t, uc, out.Session, "34")

	// Unknown choice re-prompts.
	out = converseTurn(t, uc, out.Session, "Divorced")
	if out.Session.Cursor != 1 {
		t.Errorf("expected cursor unchanged at 1, got %d", out.Session.Cursor)
	}

	// Case-insensitive match canonicalizes to the declared choice.
	out = converseTurn(t, uc, out.Session, "married")
	if got := out.Session.Answers["MaritalStatus"]; got.Choice != "Married" {
		t.Errorf("expected canonical choice Married, got %+v", got)
	}
}

func TestQuestionnaire_MultiChoiceForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		valid bool
	}{
		{
			name:  "JSON array",
			input: `["Health protection", "Accident protection"]`,
			want:  []string{"Health protection", "Accident protection"},
			valid: true,
		},
		{
			name:  "Comma separated",
			input: "health protection, Critical illness coverage",
			want:  []string{"Health protection", "Critical illness coverage"},
			valid: true,
		},
		{
			name:  "Unknown token rejected",
			input: "Health protection, Free lunch",
			valid: false,
		},
		{
			name:  "Empty selection allowed",
			input: "",
			want:  []string{},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := advisor.DefaultQuestions()[5] // InsuranceNeeds
			answer, err := coerce(q, tt.input)

			if tt.valid && err != nil {
				t.Fatalf("expected valid input, got error: %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected validation error")
				}
				return
			}

			if len(answer.Choices) != len(tt.want) {
				t.Fatalf("expected %d choices, got %d", len(tt.want), len(answer.Choices))
			}
			for i, c := range tt.want {
				if answer.Choices[i] != c {
					t.Errorf("choice %d: expected %q, got %q", i, c, answer.Choices[i])
				}
			}
		})
	}
}

func TestQuestionnaire_FullRoundTrip(t *testing.T) {
	provider := &countingProvider{text: "Đề xuất: Phúc Bảo An"}
	repo := &mockAssessmentRepo{}
	uc := newAssessmentUseCase(provider, repo, nil)

	answers := []string{
		"34",
		"Married",
		"Yes",
		"10-20 million VND",
		"Regular payments",
		"Health protection, Children's education fund",
		"No specific concerns",
	}

	out := converseTurn(t, uc, model.NewSession(), "mua bảo hiểm")

	for i, a := range answers {
		prevCursor := out.Session.Cursor
		out = converseTurn(t, uc, out.Session, a)

		if out.Session.Cursor != prevCursor+1 {
			t.Fatalf("turn %d: cursor did not advance (was %d, now %d)", i, prevCursor, out.Session.Cursor)
		}
		// Answer keys are exactly the questions already passed.
		if len(out.Session.Answers) != out.Session.Cursor {
			t.Fatalf("turn %d: %d answers for cursor %d", i, len(out.Session.Answers), out.Session.Cursor)
		}
	}

	if !out.Session.Completed {
		t.Error("expected session completed after final answer")
	}
	if out.Session.Cursor != 7 {
		t.Errorf("expected cursor 7, got %d", out.Session.Cursor)
	}
	if out.Reply != "Đề xuất: Phúc Bảo An" {
		t.Errorf("expected recommendation returned verbatim, got %q", out.Reply)
	}
	if !out.Hints.ShowScheduleForm {
		t.Error("expected scheduling hint after recommendation")
	}
	if provider.callCount() != 1 {
		t.Errorf("expected exactly one generation call, got %d", provider.callCount())
	}
	if repo.appendCount() != 1 {
		t.Errorf("expected exactly one persisted record, got %d", repo.appendCount())
	}

	for _, key := range []string{"Age", "MaritalStatus", "HasChildren", "Income", "PaymentPreference", "InsuranceNeeds", "HealthConcerns"} {
		if _, ok := out.Session.Answers[key]; !ok {
			t.Errorf("missing answer key %s", key)
		}
	}
}

func TestQuestionnaire_IdempotentCompletion(t *testing.T) {
	provider := &countingProvider{text: "rec-final"}
	repo := &mockAssessmentRepo{}

	// Short custom questionnaire keeps the test focused.
	questions := []advisor.QuestionSpec{
		{Key: "Age", Prompt: "How old are you?", Kind: model.AnswerNumber, Min: 18, Max: 100},
	}
	uc := newAssessmentUseCase(provider, repo, questions)

	out := converseTurn(t, uc, model.NewSession(), "mua bảo hiểm")
	out = converseTurn(t, uc, out.Session, "40")

	if !out.Session.Completed {
		t.Fatal("expected completion")
	}

	// Duplicate submission after completion returns the cached text and
	// triggers no new generation or persistence.
	again := converseTurn(t, uc, out.Session, "40")
	if again.Reply != "rec-final" {
		t.Errorf("expected cached recommendation verbatim, got %q", again.Reply)
	}
	if provider.callCount() != 1 {
		t.Errorf("expected 1 generation call total, got %d", provider.callCount())
	}
	if repo.appendCount() != 1 {
		t.Errorf("expected 1 persisted record total, got %d", repo.appendCount())
	}
	if !again.Session.Completed {
		t.Error("completed must be monotonic")
	}
}
