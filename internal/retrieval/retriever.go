package retrieval

import (
	"context"
	"log/slog"
)

const (
	// maxSnippetLen bounds how much of a document fragment goes into the
	// prompt. Longer fragments are cut and marked with an ellipsis.
	maxSnippetLen = 500
	ellipsis      = "..."

	defaultTopK = 3
)

// Searcher is the backing vector-similarity search. Ranking and scoring are
// its business; the retriever only shapes and truncates what comes back.
type Searcher interface {
	SimilaritySearch(ctx context.Context, query string, k int) ([]string, error)
}

// Snippet is a ranked, length-bounded fragment of source document text used
// as grounding evidence for an answer.
type Snippet struct {
	Rank int
	Text string
}

// Retriever wraps the vector store behind a best-effort interface. Retrieval
// failures never fail a request; the pipeline just proceeds without
// reference documents.
type Retriever struct {
	searcher Searcher
	logger   *slog.Logger
}

func New(searcher Searcher, logger *slog.Logger) *Retriever {
	return &Retriever{searcher: searcher, logger: logger}
}

// Search returns up to k snippets relevant to the query, ranked by the
// backing store. An unavailable store or a failed search yields an empty
// result, never an error.
func (r *Retriever) Search(ctx context.Context, query string, k int) []Snippet {
	if r == nil || r.searcher == nil {
		return nil
	}
	if k <= 0 {
		k = defaultTopK
	}

	docs, err := r.searcher.SimilaritySearch(ctx, query, k)
	if err != nil {
		r.logger.Warn("similarity search failed, continuing without documents", "error", err)
		return nil
	}

	snippets := make([]Snippet, 0, len(docs))
	for i, doc := range docs {
		snippets = append(snippets, Snippet{Rank: i + 1, Text: truncate(doc)})
	}
	return snippets
}

// truncate counts runes, not bytes, so Korean fragment text is never cut
// mid-character.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxSnippetLen {
		return text
	}
	return string(runes[:maxSnippetLen]) + ellipsis
}
