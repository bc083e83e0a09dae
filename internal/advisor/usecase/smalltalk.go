package usecase

import (
	"context"

	"insurance-advisor/pkg/llmprovider"
)

// smallTalk produces the empathetic persona reply for general-interest
// messages. It never fails: generation errors degrade to the canned line.
func (uc *implUseCase) smallTalk(ctx context.Context, text string) string {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: PromptSalesPersona}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: text}},
			},
		},
		Temperature: SalesTemperature,
		MaxTokens:   SalesMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: small talk generation failed: %v", LogPrefixConverse, err)
		return SalesFallbackReply
	}

	reply := resp.Text()
	if reply == "" {
		return SalesFallbackReply
	}
	return reply
}
