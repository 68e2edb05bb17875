package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	calls   int
	vectors [][]float32
	err     error
}

func (f *fakeProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[:len(texts)], nil
}

func TestBuildSingleBatchCall(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{
		{1, 0}, {0, 1}, {1, 1},
	}}

	idx, err := Build(context.Background(), provider, []string{"a", "b", "c"})
	assert.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 2, idx.Dim())
	assert.Equal(t, []float32{0, 1}, idx.VectorFor(1))
}

func TestBuildEmptyCorpus(t *testing.T) {
	provider := &fakeProvider{}

	idx, err := Build(context.Background(), provider, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, 0, idx.Len())
}

func TestBuildProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}

	_, err := Build(context.Background(), provider, []string{"a"})
	var svcErr *ServiceError
	assert.True(t, errors.As(err, &svcErr))
}

func TestBuildRejectsMixedDimensions(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{
		{1, 0}, {0, 1, 1},
	}}

	_, err := Build(context.Background(), provider, []string{"a", "b"})
	var svcErr *ServiceError
	assert.True(t, errors.As(err, &svcErr))
}
