package usecase

import (
	"context"
	"fmt"
	"strings"

	"insurance-advisor/internal/product"
	"insurance-advisor/internal/product/repository"
	"insurance-advisor/pkg/llmprovider"
)

const (
	MaxPassagesInContext = 10  // Top-10 most relevant passages
	MaxCharsPerPassage   = 800 // Truncate each passage to 800 chars

	// NoInformationAnswer is returned when the knowledge base has nothing
	// relevant to the query.
	NoInformationAnswer = "Hiện tại em chưa tìm thấy thông tin về sản phẩm này trong tài liệu. Anh/chị có thể hỏi về các dòng sản phẩm bảo hiểm nhân thọ, sức khỏe hoặc giáo dục ạ."

	promptAnswerSystem = `You are an AI assistant specializing in insurance plans. Provide a comprehensive summary of ALL different insurance plans mentioned in the context. Focus on key features and differences between plans. If only one plan is mentioned, state that clearly. Answer in Vietnamese.`
)

// Answer uses RAG over the product knowledge base to answer a question.
func (uc *implUseCase) Answer(ctx context.Context, input product.AnswerInput) (product.AnswerOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return product.AnswerOutput{}, product.ErrEmptyQuery
	}

	uc.l.Infof(ctx, "Answer: query=%q", input.Query)

	// Step 1: Retrieve relevant passages
	passages, err := uc.repo.SearchPassages(ctx, repository.SearchPassagesOptions{
		Query: input.Query,
		Limit: MaxPassagesInContext,
	})
	if err != nil {
		return product.AnswerOutput{}, fmt.Errorf("failed to search passages: %w", err)
	}

	if len(passages) == 0 {
		return product.AnswerOutput{
			Answer:      NoInformationAnswer,
			SourceCount: 0,
		}, nil
	}

	// Step 2: Build context with truncation
	var contextBuilder strings.Builder
	for i, p := range passages {
		safeText := truncateText(p.Text, MaxCharsPerPassage)
		contextBuilder.WriteString(fmt.Sprintf("-- Đoạn %d (Nguồn: %s, Độ phù hợp: %.0f%%) --\n%s\n\n",
			i+1, p.Source, p.Score*100, safeText))
	}

	prompt := fmt.Sprintf("Context: %s\n\nQuery: %s\n\nProvide a summary of the insurance plans mentioned:",
		contextBuilder.String(), input.Query)

	// Step 3: Call LLM
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: promptAnswerSystem}},
		},
		Messages: []llmprovider.Message{
			{
				Role:  "user",
				Parts: []llmprovider.Part{{Text: prompt}},
			},
		},
		Temperature: 0.3, // Lower temperature for factual answers
		MaxTokens:   1024,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return product.AnswerOutput{}, fmt.Errorf("LLM failed: %w", err)
	}

	answerText := resp.Text()
	if answerText == "" {
		return product.AnswerOutput{}, fmt.Errorf("empty LLM response")
	}

	return product.AnswerOutput{
		Answer:      answerText,
		SourceCount: len(passages),
		TopScore:    passages[0].Score,
	}, nil
}

// truncateText safely truncates text to maxLen (Unicode-safe for Vietnamese).
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "... [đã cắt bớt]"
}
