package movies

// Collection is an ordered sequence of movies. Insertion order is the only
// order and titles are not required to be unique.
type Collection []Movie

// Len returns the number of movies.
func (c Collection) Len() int {
	return len(c)
}

// IsEmpty reports whether the collection holds no movies.
func (c Collection) IsEmpty() bool {
	return len(c) == 0
}

// Clone returns an independent copy of c. A nil collection clones to an
// empty, non-nil one.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IndexOf returns the position of the first movie whose title equals title,
// or -1.
func (c Collection) IndexOf(title string) int {
	for i, m := range c {
		if m.Title == title {
			return i
		}
	}
	return -1
}

// Titles returns the titles in collection order.
func (c Collection) Titles() []string {
	titles := make([]string, len(c))
	for i, m := range c {
		titles[i] = m.Title
	}
	return titles
}

// Ratings returns the ratings in collection order. This flat sequence is what
// histogram renderers consume.
func (c Collection) Ratings() []float64 {
	ratings := make([]float64, len(c))
	for i, m := range c {
		ratings[i] = m.Rating
	}
	return ratings
}
