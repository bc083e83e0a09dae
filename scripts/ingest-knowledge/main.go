// scripts/ingest-knowledge/main.go
//
// Loads product brochures and policy documents into the Qdrant knowledge
// base used for product Q&A.
//
// Usage:
//   go run scripts/ingest-knowledge/main.go <path/to/documents-dir>
//
// Every .txt and .md file in the directory is split into passages,
// embedded with Voyage AI, and upserted into the configured collection.
// The file name (without extension) becomes the passage source.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"insurance-advisor/config"
	"insurance-advisor/pkg/log"
	pkgQdrant "insurance-advisor/pkg/qdrant"
	"insurance-advisor/pkg/voyage"
)

const (
	// Passages roughly one brochure section long. Larger chunks dilute
	// retrieval scores, smaller ones lose surrounding context.
	maxChunkRunes = 1200

	embedBatchSize = 32
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-knowledge/main.go <path/to/documents-dir>")
		os.Exit(1)
	}
	docsDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}

	// Idempotent: CreateCollection on an existing collection is a no-op error we tolerate.
	if err := qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		logger.Warnf(ctx, "CreateCollection: %v (continuing, collection may already exist)", err)
	}

	passages, err := loadPassages(docsDir)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load documents: %v", err)
	}
	logger.Infof(ctx, "Found %d passages in %s", len(passages), docsDir)

	successCount := 0
	for start := 0; start < len(passages); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(passages) {
			end = len(passages)
		}
		batch := passages[start:end]

		texts := make([]string, len(batch))
		for i, p := range batch {
			texts[i] = p.text
		}

		vectors, err := embeddingClient.Embed(ctx, texts)
		if err != nil {
			logger.Errorf(ctx, "Failed to embed batch %d-%d: %v", start, end, err)
			continue
		}
		if len(vectors) != len(batch) {
			logger.Errorf(ctx, "Embedding count mismatch: %d texts, %d vectors", len(batch), len(vectors))
			continue
		}

		points := make([]pkgQdrant.Point, len(batch))
		for i, p := range batch {
			points[i] = pkgQdrant.Point{
				ID:     uuid.NewString(),
				Vector: vectors[i],
				Payload: map[string]interface{}{
					"text":   p.text,
					"source": p.source,
				},
			}
		}

		if err := qdrantClient.UpsertPoints(ctx, cfg.Qdrant.CollectionName, pkgQdrant.UpsertPointsRequest{
			Points: points,
		}); err != nil {
			logger.Errorf(ctx, "Failed to upsert batch %d-%d: %v", start, end, err)
			continue
		}

		successCount += len(batch)
		logger.Infof(ctx, "Ingested %d/%d passages", successCount, len(passages))
	}

	logger.Infof(ctx, "Ingest complete! %d/%d passages indexed into %q.", successCount, len(passages), cfg.Qdrant.CollectionName)
}

type passage struct {
	text   string
	source string
}

// loadPassages reads every .txt/.md file in dir and splits it into chunks.
func loadPassages(dir string) ([]passage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var passages []passage
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".txt" && ext != ".md" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		source := strings.TrimSuffix(entry.Name(), ext)
		for _, chunk := range splitChunks(string(data), maxChunkRunes) {
			passages = append(passages, passage{text: chunk, source: source})
		}
	}
	return passages, nil
}

// splitChunks splits text on blank lines, merging paragraphs until the
// chunk approaches maxRunes. Oversized single paragraphs are kept whole.
func splitChunks(text string, maxRunes int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		current.Reset()
		currentLen = 0
	}

	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pLen := len([]rune(p))

		if currentLen > 0 && currentLen+pLen > maxRunes {
			flush()
		}
		if currentLen > 0 {
			current.WriteString("\n\n")
			currentLen += 2
		}
		current.WriteString(p)
		currentLen += pLen
	}
	flush()

	return chunks
}
