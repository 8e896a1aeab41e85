package catalog

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Stats summarises the ratings of a collection.
type Stats struct {
	Average float64           `json:"average" yaml:"average"`
	Median  float64           `json:"median" yaml:"median"`
	Best    movies.RatedTitle `json:"best" yaml:"best"`
	Worst   movies.RatedTitle `json:"worst" yaml:"worst"`
}

// Statistics computes the mean and median rating and the best and worst
// movies. Best is the first movie holding the maximum rating and Worst the
// first holding the minimum; the two scans are independent.
func Statistics(c movies.Collection) (Stats, error) {
	if c.IsEmpty() {
		return Stats{}, errors.NewEmptyCollectionError("compute statistics")
	}

	best, worst := c[0], c[0]
	var sum float64
	for _, m := range c {
		sum += m.Rating
		if m.Rating > best.Rating {
			best = m
		}
		if m.Rating < worst.Rating {
			worst = m
		}
	}

	return Stats{
		Average: sum / float64(len(c)),
		Median:  median(c.Ratings()),
		Best:    best.Rated(),
		Worst:   worst.Rated(),
	}, nil
}

// median sorts ratings in place.
func median(ratings []float64) float64 {
	slices.Sort(ratings)
	n := len(ratings)
	if n%2 == 1 {
		return ratings[n/2]
	}
	return (ratings[n/2-1] + ratings[n/2]) / 2
}

// Random picks a movie uniformly at random.
func Random(c movies.Collection) (movies.Movie, error) {
	if c.IsEmpty() {
		return movies.Movie{}, errors.NewEmptyCollectionError("pick a random movie")
	}
	return c[rand.IntN(len(c))], nil
}

// RandomFrom picks a movie uniformly at random using r.
func RandomFrom(c movies.Collection, r *rand.Rand) (movies.Movie, error) {
	if c.IsEmpty() {
		return movies.Movie{}, errors.NewEmptyCollectionError("pick a random movie")
	}
	return c[r.IntN(len(c))], nil
}

// Search returns the movies whose title contains substr, ignoring case, in
// collection order. An empty result is a NoMatchError.
func Search(c movies.Collection, substr string) ([]movies.RatedTitle, error) {
	if c.IsEmpty() {
		return nil, errors.NewEmptyCollectionError("search")
	}

	needle := strings.ToLower(substr)
	var found []movies.RatedTitle
	for _, m := range c {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			found = append(found, m.Rated())
		}
	}
	if len(found) == 0 {
		return nil, errors.NewNoMatchError(substr)
	}
	return found, nil
}

// SortByRating returns (title, rating) pairs from highest to lowest rating.
// Equal ratings keep their collection order.
func SortByRating(c movies.Collection) ([]movies.RatedTitle, error) {
	if c.IsEmpty() {
		return nil, errors.NewEmptyCollectionError("sort by rating")
	}

	sorted := make([]movies.RatedTitle, len(c))
	for i, m := range c {
		sorted[i] = m.Rated()
	}
	slices.SortStableFunc(sorted, func(a, b movies.RatedTitle) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return sorted, nil
}

// SortByYear returns (title, year) pairs from newest to oldest. Equal years
// keep their collection order.
func SortByYear(c movies.Collection) ([]movies.DatedTitle, error) {
	if c.IsEmpty() {
		return nil, errors.NewEmptyCollectionError("sort by year")
	}

	sorted := make([]movies.DatedTitle, len(c))
	for i, m := range c {
		sorted[i] = m.Dated()
	}
	slices.SortStableFunc(sorted, func(a, b movies.DatedTitle) int {
		return cmp.Compare(b.Year, a.Year)
	})
	return sorted, nil
}

// Criteria bounds a Filter. A nil bound is unconstrained.
type Criteria struct {
	MinRating *float64
	StartYear *int
	EndYear   *int
}

// WithMinRating returns a copy of cr requiring rating >= v.
func (cr Criteria) WithMinRating(v float64) Criteria {
	cr.MinRating = &v
	return cr
}

// WithStartYear returns a copy of cr requiring year >= v.
func (cr Criteria) WithStartYear(v int) Criteria {
	cr.StartYear = &v
	return cr
}

// WithEndYear returns a copy of cr requiring year <= v.
func (cr Criteria) WithEndYear(v int) Criteria {
	cr.EndYear = &v
	return cr
}

// IsEmpty reports whether no bound is set.
func (cr Criteria) IsEmpty() bool {
	return cr.MinRating == nil && cr.StartYear == nil && cr.EndYear == nil
}

// Matches reports whether m satisfies every set bound.
func (cr Criteria) Matches(m movies.Movie) bool {
	if cr.MinRating != nil && m.Rating < *cr.MinRating {
		return false
	}
	if cr.StartYear != nil && m.Year < *cr.StartYear {
		return false
	}
	if cr.EndYear != nil && m.Year > *cr.EndYear {
		return false
	}
	return true
}

// Filter returns the movies matching cr in collection order. Unlike the
// other queries it accepts an empty collection and may return an empty
// result.
func Filter(c movies.Collection, cr Criteria) movies.Collection {
	out := movies.Collection{}
	for _, m := range c {
		if cr.Matches(m) {
			out = append(out, m)
		}
	}
	return out
}
