package domain

// Reviews maps a username to that user's review text.
type Reviews map[string]string

// Book is a catalog entry keyed by ISBN.
type Book struct {
	ISBN    string  `json:"isbn" yaml:"isbn"`
	Title   string  `json:"title" yaml:"title"`
	Author  string  `json:"author" yaml:"author"`
	Reviews Reviews `json:"reviews" yaml:"reviews,omitempty"`
}

// Clone returns a copy whose review map is independent of b's.
func (b Book) Clone() Book {
	out := b
	out.Reviews = b.Reviews.Clone()
	return out
}

// Clone copies the review map. A nil map clones to an empty one.
func (r Reviews) Clone() Reviews {
	out := make(Reviews, len(r))
	for user, text := range r {
		out[user] = text
	}
	return out
}
