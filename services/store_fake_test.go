package services

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/repositories"
)

type memDoc struct {
	id  string
	raw bson.Raw
}

// memStore is an in-memory DocumentStore with the same observable
// behavior as the Mongo implementation: id uniqueness on Create, replace
// on Upsert, $set-style Patch, and equality/substring/sort/limit queries.
type memStore struct {
	collections map[string][]memDoc

	createErr error
	upsertErr error
	patchErr  error
	findErr   error

	writes int
}

func newMemStore() *memStore {
	return &memStore{collections: make(map[string][]memDoc)}
}

func (m *memStore) lookup(collection, id string) int {
	for i, doc := range m.collections[collection] {
		if doc.id == id {
			return i
		}
	}
	return -1
}

func marshalDoc(doc interface{}) (memDoc, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return memDoc{}, err
	}
	return memDoc{id: bson.Raw(raw).Lookup("_id").StringValue(), raw: raw}, nil
}

func (m *memStore) Create(ctx context.Context, collection string, doc interface{}) error {
	if m.createErr != nil {
		return m.createErr
	}
	md, err := marshalDoc(doc)
	if err != nil {
		return err
	}
	if m.lookup(collection, md.id) >= 0 {
		return apperrors.NewStorageError("create "+collection, fmt.Errorf("duplicate id %s", md.id))
	}
	m.collections[collection] = append(m.collections[collection], md)
	m.writes++
	return nil
}

func (m *memStore) Upsert(ctx context.Context, collection, id string, doc interface{}) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	md, err := marshalDoc(doc)
	if err != nil {
		return err
	}
	if i := m.lookup(collection, id); i >= 0 {
		m.collections[collection][i] = md
	} else {
		m.collections[collection] = append(m.collections[collection], md)
	}
	m.writes++
	return nil
}

func (m *memStore) Patch(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if m.patchErr != nil {
		return m.patchErr
	}
	i := m.lookup(collection, id)
	if i < 0 {
		return apperrors.NewStorageError("patch "+collection, apperrors.ErrNotFound)
	}
	var doc bson.M
	if err := bson.Unmarshal(m.collections[collection][i].raw, &doc); err != nil {
		return err
	}
	for field, value := range fields {
		doc[field] = value
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	m.collections[collection][i].raw = raw
	m.writes++
	return nil
}

func (m *memStore) Find(ctx context.Context, collection string, q repositories.Query, results interface{}) error {
	if m.findErr != nil {
		return m.findErr
	}

	matched := make([]memDoc, 0)
	for _, doc := range m.collections[collection] {
		if matches(doc.raw, q) {
			matched = append(matched, doc)
		}
	}

	if q.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			a := matched[i].raw.Lookup(q.SortField).Time()
			b := matched[j].raw.Lookup(q.SortField).Time()
			if q.SortDesc {
				return a.After(b)
			}
			return a.Before(b)
		})
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := reflect.ValueOf(results).Elem()
	slice := reflect.MakeSlice(out.Type(), len(matched), len(matched))
	for i, doc := range matched {
		if err := bson.Unmarshal(doc.raw, slice.Index(i).Addr().Interface()); err != nil {
			return err
		}
	}
	out.Set(slice)
	return nil
}

func matches(raw bson.Raw, q repositories.Query) bool {
	for field, value := range q.Equals {
		sv, ok := raw.Lookup(field).StringValueOK()
		if !ok || sv != value.(string) {
			return false
		}
	}
	if q.Search != nil && q.Search.Text != "" {
		found := false
		for _, field := range q.Search.Fields {
			if sv, ok := raw.Lookup(field).StringValueOK(); ok {
				if strings.Contains(strings.ToLower(sv), q.Search.Text) {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}
