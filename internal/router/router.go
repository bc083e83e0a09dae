package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"insurance-advisor/internal/model"
	"insurance-advisor/pkg/llmprovider"
)

// Classify determines user intent from a message. It never fails: every
// error path collapses to the general_interest fallback.
func (r *SemanticRouter) Classify(ctx context.Context, message string) RouterOutput {
	prompt := fmt.Sprintf(PromptRouterSystem, message)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return fallbackOutput(ReasonServiceError)
	}

	responseText := strings.TrimSpace(resp.Text())
	if responseText == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackOutput(ReasonEmptyResponse)
	}

	responseText = stripCodeFences(responseText)

	// Parse JSON response
	var output RouterOutput
	if err := json.Unmarshal([]byte(responseText), &output); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)

		// The model sometimes answers with the bare label instead of JSON.
		if intent, ok := model.ParseIntent(responseText); ok {
			return RouterOutput{
				Intent:     intent,
				Confidence: RouterFallbackConfidence,
				Reasoning:  ReasonLabelMatch,
			}
		}
		return fallbackOutput(ReasonParsingError)
	}

	intent, ok := model.ParseIntent(string(output.Intent))
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, output.Intent)
		return fallbackOutput(ReasonParsingError)
	}
	output.Intent = intent

	r.l.Infof(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output
}

// stripCodeFences removes markdown code blocks if present (```json ... ```)
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}
	return text
}

func fallbackOutput(reason string) RouterOutput {
	return RouterOutput{
		Intent:     model.IntentGeneralInterest,
		Confidence: RouterFallbackConfidence,
		Reasoning:  reason,
	}
}
