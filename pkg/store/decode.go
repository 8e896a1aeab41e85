package store

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

// requiredFields lists the keys every stored record must carry, in the order
// they are checked.
var requiredFields = []string{"title", "year", "rating"}

// toCollection checks that v is a sequence of records with every required
// field and converts it. Extra keys are ignored.
func toCollection(path string, v any) (movies.Collection, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, errors.NewMalformedRecordError(path, -1, "expected a list of movies")
	}

	c := make(movies.Collection, 0, len(list))
	for i, item := range list {
		fields, ok := asObject(item)
		if !ok {
			return nil, errors.NewMalformedRecordError(path, i, fmt.Sprintf("expected an object, got %T", item))
		}
		for _, name := range requiredFields {
			if _, ok := fields[name]; !ok {
				return nil, errors.NewMalformedRecordError(path, i, fmt.Sprintf("missing field %q", name))
			}
		}

		title, ok := fields["title"].(string)
		if !ok {
			return nil, errors.NewMalformedRecordError(path, i, "title is not text")
		}
		year, ok := asInt(fields["year"])
		if !ok {
			return nil, errors.NewMalformedRecordError(path, i, "year is not an integer")
		}
		rating, ok := asFloat(fields["rating"])
		if !ok {
			return nil, errors.NewMalformedRecordError(path, i, "rating is not a number")
		}

		c = append(c, movies.Movie{Title: title, Year: year, Rating: rating})
	}
	return c, nil
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
