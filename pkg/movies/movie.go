// Package movies defines the movie record and the ordered collection that the
// store persists and the catalog queries.
package movies

import "fmt"

// Movie is one catalog entry. Title is the identity key and is compared
// case-sensitively. Rating is conventionally in [0, 10] but nothing at this
// level enforces it.
type Movie struct {
	Title  string  `json:"title" yaml:"title"`
	Year   int     `json:"year" yaml:"year"`
	Rating float64 `json:"rating" yaml:"rating"`
}

// String implements fmt.Stringer.
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d): %g", m.Title, m.Year, m.Rating)
}

// RatedTitle pairs a title with its rating.
type RatedTitle struct {
	Title  string  `json:"title" yaml:"title"`
	Rating float64 `json:"rating" yaml:"rating"`
}

// DatedTitle pairs a title with its release year.
type DatedTitle struct {
	Title string `json:"title" yaml:"title"`
	Year  int    `json:"year" yaml:"year"`
}

// Rated returns the (title, rating) pair for m.
func (m Movie) Rated() RatedTitle {
	return RatedTitle{Title: m.Title, Rating: m.Rating}
}

// Dated returns the (title, year) pair for m.
func (m Movie) Dated() DatedTitle {
	return DatedTitle{Title: m.Title, Year: m.Year}
}
