package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"movie-rental/internal/catalog/domain/model"
	"movie-rental/internal/catalog/domain/repository"
	apperrors "movie-rental/internal/shared/errors"
	"movie-rental/internal/shared/logger"
)

// fakeStore is an in-memory DocumentStore that honors the adapter's query
// semantics (equality filters, ordering, offset/limit, ownership scoping)
// and counts accesses per collection so tests can assert on the cascade.
type fakeStore struct {
	mu   sync.Mutex
	docs map[string][]*model.Document
	seq  int

	getCalls   map[string]int
	queryCalls map[string]int
	addCalls   int

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:       make(map[string][]*model.Document),
		getCalls:   make(map[string]int),
		queryCalls: make(map[string]int),
	}
}

func refKey(ref repository.CollectionRef) string {
	return ref.Name + "|" + ref.ParentID
}

func (s *fakeStore) Add(ctx context.Context, ref repository.CollectionRef, fields map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCalls++
	if s.failWith != nil {
		return "", s.failWith
	}

	s.seq++
	id := fmt.Sprintf("doc-%d", s.seq)
	copied := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.docs[refKey(ref)] = append(s.docs[refKey(ref)], &model.Document{
		DocumentID: id,
		ParentID:   ref.ParentID,
		Fields:     copied,
	})
	return id, nil
}

func (s *fakeStore) Get(ctx context.Context, ref repository.CollectionRef, id string) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls[ref.Name]++
	if s.failWith != nil {
		return nil, s.failWith
	}

	if doc := s.find(ref, id); doc != nil {
		return doc, nil
	}
	return nil, apperrors.ErrDocumentNotFound
}

func (s *fakeStore) Update(ctx context.Context, ref repository.CollectionRef, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	// Unmatched IDs are not reported, like the Mongo adapter.
	if doc := s.find(ref, id); doc != nil {
		for k, v := range fields {
			doc.Fields[k] = v
		}
	}
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, ref repository.CollectionRef, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	key := refKey(ref)
	for i, doc := range s.docs[key] {
		if doc.DocumentID == id {
			s.docs[key] = append(s.docs[key][:i], s.docs[key][i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeStore) Increment(ctx context.Context, ref repository.CollectionRef, id, field string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}

	doc := s.find(ref, id)
	if doc == nil {
		return apperrors.ErrDocumentNotFound
	}
	current, _ := toFloat64(doc.Fields[field])
	doc.Fields[field] = current + float64(delta)
	return nil
}

func (s *fakeStore) Query(ctx context.Context, ref repository.CollectionRef, query model.Query) ([]*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryCalls[ref.Name]++
	if s.failWith != nil {
		return nil, s.failWith
	}

	matched := s.filter(ref, query)
	if len(query.Orders) > 0 {
		order := query.Orders[0]
		sort.SliceStable(matched, func(i, j int) bool {
			cmp := compareValues(matched[i].Fields[order.Field], matched[j].Fields[order.Field])
			if order.Direction == model.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	if query.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[query.Offset:]
	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func (s *fakeStore) Count(ctx context.Context, ref repository.CollectionRef, query model.Query) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	return int64(len(s.filter(ref, query))), nil
}

func (s *fakeStore) find(ref repository.CollectionRef, id string) *model.Document {
	for _, doc := range s.docs[refKey(ref)] {
		if doc.DocumentID == id {
			return doc
		}
	}
	return nil
}

func (s *fakeStore) filter(ref repository.CollectionRef, query model.Query) []*model.Document {
	var matched []*model.Document
	for _, doc := range s.docs[refKey(ref)] {
		ok := true
		for _, f := range query.Filters {
			if doc.Fields[f.Field] != f.Value {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, doc)
		}
	}
	return matched
}

func compareValues(a, b interface{}) int {
	if fa, ok := toFloat64(a); ok {
		if fb, ok := toFloat64(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// fakeCache records cache traffic for assertions.
type fakeCache struct {
	entries       map[string]map[string]interface{}
	sets          []string
	invalidations []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]map[string]interface{})}
}

func (c *fakeCache) Get(ctx context.Context, id string) (map[string]interface{}, bool) {
	fields, ok := c.entries[id]
	return fields, ok
}

func (c *fakeCache) Set(ctx context.Context, id string, fields map[string]interface{}) {
	c.entries[id] = fields
	c.sets = append(c.sets, id)
}

func (c *fakeCache) Invalidate(ctx context.Context, id string) {
	delete(c.entries, id)
	c.invalidations = append(c.invalidations, id)
}

// testLogger silences logging in tests.
type testLogger struct{}

func (testLogger) Debug(args ...interface{})                          {}
func (testLogger) Info(args ...interface{})                           {}
func (testLogger) Warn(args ...interface{})                           {}
func (testLogger) Error(args ...interface{})                          {}
func (testLogger) Fatal(args ...interface{})                          {}
func (testLogger) Debugf(format string, args ...interface{})          {}
func (testLogger) Infof(format string, args ...interface{})           {}
func (testLogger) Warnf(format string, args ...interface{})           {}
func (testLogger) Errorf(format string, args ...interface{})          {}
func (testLogger) Fatalf(format string, args ...interface{})          {}
func (l testLogger) WithFields(map[string]interface{}) logger.Logger  { return l }
func (l testLogger) WithComponent(string) logger.Logger               { return l }
