package projector

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// UnknownKey labels the single bucket that collects rows with a null or blank group key.
const UnknownKey = "Unknown"

// Decimal parses a driver-rendered numeric. NULL or garbage is zero.
func Decimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Text renders identity values as strings.
func Text(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case *int64:
		if t == nil {
			return ""
		}
		return strconv.FormatInt(*t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	case decimal.Decimal:
		return t.String()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Keyed is one grouped aggregate row as it comes off the wire.
type Keyed[T any] struct {
	Key   *string
	Value T
}

type Group[T any] struct {
	Key   string
	Value T
}

// Fold merges rows sharing a key, folds null or blank keys into one Unknown bucket
// and orders the result by descending weight, ties broken by key.
func Fold[T any](rows []Keyed[T], merge func(into *T, from T), weight func(T) int64) []Group[T] {
	index := make(map[string]int, len(rows))
	groups := make([]Group[T], 0, len(rows))

	for _, row := range rows {
		key := UnknownKey
		if row.Key != nil && strings.TrimSpace(*row.Key) != "" {
			key = *row.Key
		}
		if i, ok := index[key]; ok {
			merge(&groups[i].Value, row.Value)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group[T]{Key: key, Value: row.Value})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		wi, wj := weight(groups[i].Value), weight(groups[j].Value)
		if wi != wj {
			return wi > wj
		}
		return groups[i].Key < groups[j].Key
	})

	return groups
}
