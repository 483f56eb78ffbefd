package store

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gopkg.in/mgo.v2/bson"
)

// Memory is a process local Store. Every operation holds the collection lock,
// so upserts by key are atomic the same way a unique index makes them in mongo.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]bson.M
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: map[string][]bson.M{}}
}

func (m *Memory) FindOne(collection string, key Predicate, result interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if key.Match(doc) {
			return fromM(doc, result)
		}
	}
	return ErrNotFound
}

func (m *Memory) Upsert(collection string, key Predicate, doc interface{}, result interface{}) error {
	set, err := toM(doc)
	if err != nil {
		return err
	}
	delete(set, "_id")

	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.collections[collection]
	for _, stored := range list {
		if !key.Match(stored) {
			continue
		}
		for k, v := range set {
			stored[k] = v
		}
		return fromM(stored, result)
	}

	inserted := bson.M{"_id": bson.NewObjectId()}
	for _, c := range key {
		if c.Op == Eq && !strings.Contains(c.Field, ".") {
			inserted[c.Field] = c.Value
		}
	}
	for k, v := range set {
		inserted[k] = v
	}
	m.collections[collection] = append(list, inserted)
	return fromM(inserted, result)
}

func (m *Memory) Find(collection string, p Predicate, page, perPage int, result interface{}) (Page, error) {
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return Page{}, errors.New("find result must be a pointer to a slice")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matches := []bson.M{}
	for _, doc := range m.collections[collection] {
		if p.Match(doc) {
			matches = append(matches, doc)
		}
	}

	meta := NewPage(len(matches), page, perPage)
	from := meta.Skip()
	if from > len(matches) {
		from = len(matches)
	}
	to := from + perPage
	if to > len(matches) {
		to = len(matches)
	}

	slice := reflect.MakeSlice(rv.Elem().Type(), 0, to-from)
	for _, doc := range matches[from:to] {
		elem := reflect.New(rv.Elem().Type().Elem())
		if err := fromM(doc, elem.Interface()); err != nil {
			return meta, err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	rv.Elem().Set(slice)
	return meta, nil
}

func (m *Memory) AggregateSum(collection string, p Predicate, field string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0.0
	for _, doc := range m.collections[collection] {
		if !p.Match(doc) {
			continue
		}
		value, exists := Lookup(doc, field)
		if !exists || value == nil {
			continue
		}
		n, ok := ToFloat(value)
		if !ok {
			return 0, fmt.Errorf("cannot convert %v at %s to double", value, field)
		}
		total += n
	}
	return total, nil
}

// Duplicates groups documents by the given keys and reports groups larger than one.
func (m *Memory) Duplicates(collection string, keys ...string) ([]Duplicate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups := map[string]*Duplicate{}
	order := []string{}
	for _, doc := range m.collections[collection] {
		key := map[string]interface{}{}
		parts := make([]string, len(keys))
		for i, k := range keys {
			v, _ := Lookup(doc, k)
			key[k] = v
			parts[i] = fmt.Sprintf("%v", v)
		}
		fingerprint := strings.Join(parts, "\x00")
		g, exists := groups[fingerprint]
		if !exists {
			g = &Duplicate{Key: key}
			groups[fingerprint] = g
			order = append(order, fingerprint)
		}
		g.Count++
		if id, ok := doc["_id"].(bson.ObjectId); ok {
			g.IDs = append(g.IDs, id.Hex())
		}
	}

	list := []Duplicate{}
	for _, fingerprint := range order {
		if g := groups[fingerprint]; g.Count > 1 {
			sort.Strings(g.IDs)
			list = append(list, *g)
		}
	}
	return list, nil
}

// Len counts the documents stored in a collection.
func (m *Memory) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func toM(doc interface{}) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	m := bson.M{}
	err = bson.Unmarshal(data, &m)
	return m, err
}

func fromM(doc bson.M, result interface{}) error {
	if result == nil {
		return nil
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, result)
}
