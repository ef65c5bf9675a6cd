package store

import (
	"context"
	"fmt"
)

// Embedder converts text into a dense vector. The gemini client satisfies
// this against the embedContent endpoint.
type Embedder interface {
	EmbedText(ctx context.Context, model, text string) ([]float64, error)
}

// VectorSearch runs similarity search over pgvector-backed document
// fragments ingested from the university's PDF sources.
type VectorSearch struct {
	store      *Store
	embedder   Embedder
	embedModel string
	collection string
}

func NewVectorSearch(s *Store, embedder Embedder, embedModel, collection string) *VectorSearch {
	return &VectorSearch{
		store:      s,
		embedder:   embedder,
		embedModel: embedModel,
		collection: collection,
	}
}

// SimilaritySearch embeds the query and returns the content of the k nearest
// document fragments by cosine distance. Ranking is entirely the database's;
// callers shape and truncate the results.
func (v *VectorSearch) SimilaritySearch(ctx context.Context, query string, k int) ([]string, error) {
	vec, err := v.embedder.EmbedText(ctx, v.embedModel, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := v.store.pool.Query(ctx, `
		SELECT content FROM documents
		WHERE collection = $1
		ORDER BY embedding <=> $2::vector
		LIMIT $3`,
		v.collection, pgVector(vec), k,
	)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var docs []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return docs, nil
}
