package embedding

import (
	"context"
	"fmt"
)

// Index holds one vector per corpus entry, keyed by entry id. It is built
// once at startup with a single batch call and is read-only afterwards.
type Index struct {
	vectors [][]float32
	dim     int
}

// Build embeds all texts in one batch. Any provider failure aborts the build;
// there is no partial index. All vectors must share one dimensionality.
func Build(ctx context.Context, provider Provider, texts []string) (*Index, error) {
	if len(texts) == 0 {
		return &Index{}, nil
	}

	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}
	if len(vectors) != len(texts) {
		return nil, &ServiceError{Err: fmt.Errorf("got %d vectors for %d texts", len(vectors), len(texts))}
	}

	dim := len(vectors[0])
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, &ServiceError{Err: fmt.Errorf("vector %d has dimension %d, expected %d", i, len(vec), dim)}
		}
	}

	return &Index{vectors: vectors, dim: dim}, nil
}

func (idx *Index) Len() int {
	return len(idx.vectors)
}

func (idx *Index) Dim() int {
	return idx.dim
}

// VectorFor returns the vector for a corpus entry id.
func (idx *Index) VectorFor(id int) []float32 {
	return idx.vectors[id]
}

// All returns the vectors in id order; position is the entry id.
func (idx *Index) All() [][]float32 {
	return idx.vectors
}
