package store

import (
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/mgo.v2/bson"
)

// Op is a comparison operator supported by predicates.
type Op string

const (
	Eq  Op = "$eq"
	Gte Op = "$gte"
	Lte Op = "$lte"
)

// Clause is a single (field, operator, value) match condition.
type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// Predicate is a conjunction of clauses. The zero value matches everything.
type Predicate []Clause

// Where starts a predicate with one clause.
func Where(field string, op Op, value interface{}) Predicate {
	return Predicate{{field, op, value}}
}

// And returns a copy of p with one more clause.
func (p Predicate) And(field string, op Op, value interface{}) Predicate {
	next := make(Predicate, len(p), len(p)+1)
	copy(next, p)
	return append(next, Clause{field, op, value})
}

// Fields lists the distinct fields referenced, in clause order.
func (p Predicate) Fields() []string {
	seen := map[string]bool{}
	list := []string{}
	for _, c := range p {
		if seen[c.Field] {
			continue
		}
		seen[c.Field] = true
		list = append(list, c.Field)
	}
	return list
}

// M compiles the predicate into a mongo query document.
func (p Predicate) M() bson.M {
	query := bson.M{}
	for _, field := range p.Fields() {
		ops := bson.M{}
		plain := true
		for _, c := range p {
			if c.Field != field {
				continue
			}
			ops[string(c.Op)] = c.Value
			if c.Op != Eq {
				plain = false
			}
		}
		if plain {
			query[field] = ops[string(Eq)]
			continue
		}
		query[field] = ops
	}
	return query
}

// Match evaluates the predicate against a decoded document.
func (p Predicate) Match(doc bson.M) bool {
	for _, c := range p {
		value, exists := Lookup(doc, c.Field)
		if !exists {
			return false
		}
		if !c.matches(value) {
			return false
		}
	}
	return true
}

func (c Clause) matches(value interface{}) bool {
	switch c.Op {
	case Eq:
		a, aok := ToFloat(value)
		b, bok := ToFloat(c.Value)
		if aok && bok && isNumber(value) && isNumber(c.Value) {
			return a == b
		}
		return reflect.DeepEqual(value, c.Value)
	case Gte, Lte:
		if !isNumber(c.Value) {
			return false
		}
		a, ok := ToFloat(value)
		if !ok {
			return false
		}
		b, _ := ToFloat(c.Value)
		if c.Op == Gte {
			return a >= b
		}
		return a <= b
	}
	return false
}

// Lookup resolves a dotted path inside nested documents.
func Lookup(doc bson.M, path string) (interface{}, bool) {
	var current interface{} = doc
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case bson.M:
			v, exists := node[part]
			if !exists {
				return nil, false
			}
			current = v
		case map[string]interface{}:
			v, exists := node[part]
			if !exists {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

// ToFloat coerces decimal-like values to float64, the way $toDouble does.
func ToFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
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
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}
