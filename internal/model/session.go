package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGeneralInterest       Intent = "general_interest"
	IntentProductInfo           Intent = "product_info"
	IntentPurchase              Intent = "purchase_intent"
	IntentRecommendationRequest Intent = "recommendation_request"
)

// Intents is the closed set of valid intent labels.
var Intents = []Intent{
	IntentGeneralInterest,
	IntentProductInfo,
	IntentPurchase,
	IntentRecommendationRequest,
}

// ParseIntent matches the trailing token of raw against the intent labels,
// case-insensitively. Returns false when nothing matches.
func ParseIntent(raw string) (Intent, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return "", false
	}

	fields := strings.Fields(raw)
	last := strings.Trim(fields[len(fields)-1], `"'.,:`)

	for _, it := range Intents {
		if last == string(it) {
			return it, true
		}
	}
	return "", false
}

// Session holds all per-conversation state. It is threaded explicitly
// through every call and never shared between goroutines.
type Session struct {
	ID               string            `json:"id"`
	Cursor           int               `json:"cursor"`
	Answers          map[string]Answer `json:"answers"`
	Completed        bool              `json:"completed"`
	LastIntent       Intent            `json:"last_intent,omitempty"`
	AssessmentActive bool              `json:"assessment_active"`
	Recommendation   string            `json:"recommendation,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NewSession creates a fresh session with zero state.
func NewSession() Session {
	return Session{
		ID:        uuid.NewString(),
		Answers:   map[string]Answer{},
		UpdatedAt: time.Now(),
	}
}

// AnswerKind discriminates the typed answer variants.
type AnswerKind string

const (
	AnswerNumber AnswerKind = "number"
	AnswerSingle AnswerKind = "single"
	AnswerMulti  AnswerKind = "multi"
)

// Answer is a tagged variant holding one questionnaire answer.
// Exactly one of Number, Choice, Choices is meaningful per Kind.
type Answer struct {
	Kind    AnswerKind
	Number  int
	Choice  string
	Choices []string
}

// NumberAnswer builds a number-kind answer.
func NumberAnswer(n int) Answer {
	return Answer{Kind: AnswerNumber, Number: n}
}

// SingleAnswer builds a single-choice answer.
func SingleAnswer(choice string) Answer {
	return Answer{Kind: AnswerSingle, Choice: choice}
}

// MultiAnswer builds a multi-choice answer.
func MultiAnswer(choices []string) Answer {
	return Answer{Kind: AnswerMulti, Choices: choices}
}

// Value returns the underlying answer value for template interpolation.
func (a Answer) Value() any {
	switch a.Kind {
	case AnswerNumber:
		return a.Number
	case AnswerMulti:
		return a.Choices
	default:
		return a.Choice
	}
}

// String renders the answer for prompt interpolation.
func (a Answer) String() string {
	switch a.Kind {
	case AnswerNumber:
		return fmt.Sprintf("%d", a.Number)
	case AnswerMulti:
		return strings.Join(a.Choices, ", ")
	default:
		return a.Choice
	}
}

// MarshalJSON writes the bare value: a number, a string, or an array.
func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value())
}

// UnmarshalJSON reads the bare value back into the matching variant.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*a = NumberAnswer(int(v))
	case string:
		*a = SingleAnswer(v)
	case []any:
		choices := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("answer array element is not a string: %v", item)
			}
			choices = append(choices, s)
		}
		*a = MultiAnswer(choices)
	default:
		return fmt.Errorf("unsupported answer value: %v", raw)
	}
	return nil
}

// Progress reports questionnaire position for display.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// DisplayHints are advisory flags for the presentation layer.
type DisplayHints struct {
	ShowScheduleForm bool      `json:"show_schedule_form,omitempty"`
	Progress         *Progress `json:"progress,omitempty"`
}
