package domain

// Entry is a single (name, token) pair taken from a product-list line.
// Both fields are copied verbatim from the first two whitespace-separated tokens.
type Entry struct {
	Name  string
	Token string
}

// String returns the entry as it appears on the rendered page: name and token
// concatenated with no separator.
func (e Entry) String() string {
	return e.Name + e.Token
}
