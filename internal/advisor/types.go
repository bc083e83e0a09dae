package advisor

import "insurance-advisor/internal/model"

// ConverseInput is one user turn with the session state from the previous turn.
type ConverseInput struct {
	Session model.Session
	Text    string
}

// ConverseOutput carries the reply, the new session state, and display hints.
type ConverseOutput struct {
	Reply   string
	Session model.Session
	Hints   model.DisplayHints
}

// QuestionSpec defines one needs-assessment question. The list is static
// and ordered; it never changes for the process lifetime.
type QuestionSpec struct {
	Key     string
	Prompt  string
	Kind    model.AnswerKind
	Choices []string // single/multi kinds
	Min     int      // number kind
	Max     int      // number kind
}

// DefaultQuestions returns the standard needs-assessment questionnaire.
func DefaultQuestions() []QuestionSpec {
	return []QuestionSpec{
		{
			Key:    "Age",
			Prompt: "How old are you?",
			Kind:   model.AnswerNumber,
			Min:    18,
			Max:    100,
		},
		{
			Key:     "MaritalStatus",
			Prompt:  "What is your marital status?",
			Kind:    model.AnswerSingle,
			Choices: []string{"Single", "Married"},
		},
		{
			Key:     "HasChildren",
			Prompt:  "Do you have children?",
			Kind:    model.AnswerSingle,
			Choices: []string{"Yes", "No"},
		},
		{
			Key:    "Income",
			Prompt: "What is your monthly income range?",
			Kind:   model.AnswerSingle,
			Choices: []string{
				"Less than 10 million VND",
				"10-20 million VND",
				"20-50 million VND",
				"Above 50 million VND",
			},
		},
		{
			Key:     "PaymentPreference",
			Prompt:  "What is your preferred premium payment method?",
			Kind:    model.AnswerSingle,
			Choices: []string{"One-time payment", "Regular payments"},
		},
		{
			Key:    "InsuranceNeeds",
			Prompt: "What are your primary insurance needs?",
			Kind:   model.AnswerMulti,
			Choices: []string{
				"Basic life protection",
				"Savings and investment",
				"Children's education fund",
				"Health protection",
				"Accident protection",
				"Critical illness coverage",
				"Family income protection",
			},
		},
		{
			Key:    "HealthConcerns",
			Prompt: "Do you have any specific health concerns?",
			Kind:   model.AnswerMulti,
			Choices: []string{
				"Cancer risks",
				"Critical illnesses",
				"Hospital and surgery expenses",
				"No specific concerns",
			},
		},
	}
}
