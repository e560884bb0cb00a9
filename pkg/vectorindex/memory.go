package vectorindex

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
)

// MemStore is an exact-search, in-process Store. It backs unit tests and the
// "memory" backend setting for single-node setups with small corpora.
type MemStore struct {
	mu      sync.RWMutex
	dim     int
	nextID  int64
	entries map[string]memEntry
}

type memEntry struct {
	externalID string
	vector     []float32
	metadata   map[string]any
}

// NewMemStore creates an in-memory store with a fixed dimension.
func NewMemStore(dim int) *MemStore {
	if dim <= 0 {
		panic("vectorindex.NewMemStore: dimension must be positive")
	}
	return &MemStore{
		dim:     dim,
		entries: make(map[string]memEntry),
	}
}

// Insert implements Store.
func (s *MemStore) Insert(_ context.Context, docID string, vector []float32, metadata map[string]any) (string, error) {
	if err := checkDimension(s.dim, vector); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[docID]
	if !ok {
		s.nextID++
		entry.externalID = strconv.FormatInt(s.nextID, 10)
	}
	entry.vector = append([]float32(nil), vector...)
	entry.metadata = metadata
	s.entries[docID] = entry
	return entry.externalID, nil
}

// Search implements Store with an exact scan.
func (s *MemStore) Search(_ context.Context, vector []float32, topK int) ([]Match, error) {
	if err := checkDimension(s.dim, vector); err != nil {
		return nil, err
	}
	if topK <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	matches := make([]Match, 0, len(s.entries))
	for docID, entry := range s.entries {
		matches = append(matches, Match{
			ExternalID: entry.externalID,
			DocID:      docID,
			Distance:   l2Distance(vector, entry.vector),
			Metadata:   entry.metadata,
		})
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].DocID < matches[j].DocID
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// Delete implements Store.
func (s *MemStore) Delete(_ context.Context, docID string) error {
	s.mu.Lock()
	delete(s.entries, docID)
	s.mu.Unlock()
	return nil
}

// Flush implements Store.
func (s *MemStore) Flush(context.Context) error {
	return nil
}

// Len returns the number of stored vectors.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func l2Distance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
