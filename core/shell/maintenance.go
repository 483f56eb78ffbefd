package shell

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tryanzu/orders/board/customers"
	"github.com/tryanzu/orders/board/orders"
	"github.com/tryanzu/orders/board/products"
	"github.com/tryanzu/orders/core/store"
)

// Audit is a collection natural key checked for collisions.
type Audit struct {
	Collection string
	Key        []string
}

var Audits = []Audit{
	{customers.Collection, customers.NaturalKey},
	{products.Collection, products.NaturalKey},
	{orders.Collection, orders.NaturalKey},
}

// Duplicates writes a report of natural keys held by more than one document
// and returns how many were found. No collections means every audit.
func Duplicates(auditor store.Auditor, w io.Writer, collections ...string) (found int, err error) {
	for _, audit := range Audits {
		if len(collections) > 0 && !contains(collections, audit.Collection) {
			continue
		}
		list, err := auditor.Duplicates(audit.Collection, audit.Key...)
		if err != nil {
			return found, fmt.Errorf("%s: %w", audit.Collection, err)
		}
		if len(list) == 0 {
			fmt.Fprintf(w, "%s: no duplicated %s\n", audit.Collection, strings.Join(audit.Key, "+"))
			continue
		}
		for _, dup := range list {
			fmt.Fprintf(w, "%s: %s held by %d documents: %s\n",
				audit.Collection, describe(dup.Key), dup.Count, strings.Join(dup.IDs, ", "))
		}
		found += len(list)
	}
	return
}

func describe(key map[string]interface{}) string {
	fields := make([]string, 0, len(key))
	for k := range key {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, k := range fields {
		parts[i] = fmt.Sprintf("%s=%v", k, key[k])
	}
	return strings.Join(parts, " ")
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
