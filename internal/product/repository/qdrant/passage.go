package qdrant

import (
	"context"
	"fmt"

	"insurance-advisor/internal/product/repository"
	pkgLog "insurance-advisor/pkg/log"
	pkgQdrant "insurance-advisor/pkg/qdrant"
	"insurance-advisor/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	l              pkgLog.Logger
}

// New creates a new Qdrant passage repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.PassageRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}

// SearchPassages embeds the query and runs a vector search over the
// product knowledge base.
func (r *implRepository) SearchPassages(ctx context.Context, opt repository.SearchPassagesOptions) ([]repository.Passage, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}
	queryVector := vectors[0]

	searchReq := pkgQdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       opt.Limit,
		WithPayload: true,
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, searchReq)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	passages := make([]repository.Passage, 0, len(resp.Result))
	for _, scored := range resp.Result {
		textRaw, exists := scored.Payload["text"]
		if !exists {
			r.l.Errorf(ctx, "qdrant repository: text missing in payload for point %v", scored.ID)
			continue
		}

		text, ok := textRaw.(string)
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: text type assertion failed for point %v, got type %T",
				scored.ID, textRaw)
			continue
		}

		source, _ := scored.Payload["source"].(string)

		passages = append(passages, repository.Passage{
			ID:     scored.ID,
			Text:   text,
			Source: source,
			Score:  scored.Score,
		})
	}

	r.l.Infof(ctx, "qdrant repository: found %d passages for query %q", len(passages), opt.Query)
	return passages, nil
}
