package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Entry is a single post from the brand channel. Entries are immutable after
// load; Id is the position in the source file and doubles as the index key
// for the embedding index.
type Entry struct {
	Id       int
	Text     string
	Metadata Metadata
}

// LoadError signals a missing or malformed corpus source. It is fatal at
// startup: the service must not come up with a partial corpus.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("corpus load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Store holds the full corpus in memory. It is built once at startup and is
// read-only afterwards, so concurrent readers need no locking.
type Store struct {
	entries []Entry
}

// Load reads a flat JSON array of post strings (the output of cmd/extract),
// tags each post and assigns contiguous ids in file order. Blank strings are
// dropped so ids stay contiguous over real posts.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var texts []string
	if err := json.Unmarshal(raw, &texts); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	return NewStore(texts), nil
}

// NewStore builds a store from already-loaded texts. Used by Load and by tests.
func NewStore(texts []string) *Store {
	entries := make([]Entry, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		entries = append(entries, Entry{
			Id:       len(entries),
			Text:     text,
			Metadata: Tag(text),
		})
	}
	return &Store{entries: entries}
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entry returns the entry with the given id. Ids are contiguous over
// [0, Len()), anything else panics like a slice index would.
func (s *Store) Entry(id int) Entry {
	return s.entries[id]
}

func (s *Store) Entries() []Entry {
	return s.entries
}

// Texts returns the raw post texts in id order, for the embedding batch.
func (s *Store) Texts() []string {
	texts := make([]string, len(s.entries))
	for i, e := range s.entries {
		texts[i] = e.Text
	}
	return texts
}
