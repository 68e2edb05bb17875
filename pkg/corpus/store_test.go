package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreservesOrder(t *testing.T) {
	path := writeCorpusFile(t, `["первый пост", "второй пост", "третий пост"]`)

	store, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, "первый пост", store.Entry(0).Text)
	assert.Equal(t, "третий пост", store.Entry(2).Text)
	for i, e := range store.Entries() {
		assert.Equal(t, i, e.Id)
	}
}

func TestLoadKeepsDuplicates(t *testing.T) {
	path := writeCorpusFile(t, `["пост", "пост"]`)

	store, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestLoadSkipsBlankStrings(t *testing.T) {
	path := writeCorpusFile(t, `["пост", "", "  ", "ещё пост"]`)

	store, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.Entry(1).Id)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeCorpusFile(t, `{"messages": "not a flat list"`)

	_, err := Load(path)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestStoreTagsEntries(t *testing.T) {
	store := NewStore([]string{
		"Интересный факт про ароматы...",
		"Новогоднее настроение! Дарите сюрпризы...",
		"Заказ готов, цена 1500р",
	})

	assert.Equal(t, CategoryEducational, store.Entry(0).Metadata.Category)
	assert.Equal(t, CategorySeasonal, store.Entry(1).Metadata.Category)
	assert.Equal(t, CategoryCommercial, store.Entry(2).Metadata.Category)
}
