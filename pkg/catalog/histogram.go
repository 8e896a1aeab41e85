package catalog

import (
	"math"

	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/movies"
)

// Bin is one bucket of a rating histogram covering [Lower, Upper). The last
// bin also includes Upper.
type Bin struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Count int     `json:"count" yaml:"count"`
}

// Histogram counts ratings into n equal-width bins spanning the rating scale.
// Ratings outside the scale are counted in the nearest end bin.
func Histogram(c movies.Collection, n int) ([]Bin, error) {
	if n < 1 {
		return nil, errors.NewValidationError("bins", n, "must be at least 1")
	}
	if c.IsEmpty() {
		return nil, errors.NewEmptyCollectionError("build a histogram")
	}

	width := (constants.MaxRating - constants.MinRating) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lower = constants.MinRating + float64(i)*width
		bins[i].Upper = constants.MinRating + float64(i+1)*width
	}

	for _, r := range c.Ratings() {
		i := int(math.Floor((r - constants.MinRating) / width))
		i = max(0, min(i, n-1))
		bins[i].Count++
	}
	return bins, nil
}
