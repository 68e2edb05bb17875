package retriever

import (
	"context"
	"sort"

	"aroma-content-be/pkg/corpus"
	"aroma-content-be/pkg/embedding"
)

// Example is a corpus entry selected as a style exemplar for one query.
// It only lives long enough to be rendered into a prompt.
type Example struct {
	Entry corpus.Entry
	Score float64
}

// Retriever ranks corpus entries by embedding similarity to a query. The
// query is embedded with the same provider the index was built with.
type Retriever struct {
	store    *corpus.Store
	index    *embedding.Index
	provider embedding.Provider
}

func New(store *corpus.Store, index *embedding.Index, provider embedding.Provider) *Retriever {
	return &Retriever{
		store:    store,
		index:    index,
		provider: provider,
	}
}

// Retrieve returns up to k entries ranked by cosine similarity, highest
// first. Ties are broken by ascending id so results are deterministic. When
// filter is non-empty, entries of other categories are skipped; a filter that
// matches nothing yields an empty result, not an error. k <= 0 returns empty
// without touching the embedding service.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int, filter corpus.Category) ([]Example, error) {
	if k <= 0 || r.store.Len() == 0 {
		return nil, nil
	}

	vectors, err := r.provider.EmbedBatch(ctx, []string{query})
	if err != nil {
		return nil, &embedding.ServiceError{Err: err}
	}
	queryVec := vectors[0]

	type scored struct {
		id    int
		score float64
	}
	ranked := make([]scored, r.store.Len())
	for id := 0; id < r.store.Len(); id++ {
		ranked[id] = scored{id: id, score: Cosine(queryVec, r.index.VectorFor(id))}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})

	results := make([]Example, 0, k)
	for _, cand := range ranked {
		if len(results) >= k {
			break
		}
		entry := r.store.Entry(cand.id)
		if filter != "" && entry.Metadata.Category != filter {
			continue
		}
		results = append(results, Example{Entry: entry, Score: cand.score})
	}
	return results, nil
}
