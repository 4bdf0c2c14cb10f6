package search

// SearchError is a failure from the search service
type SearchError string

// Error implements the error interface
func (e SearchError) Error() string {
	return string(e)
}

const (
	ErrNetwork          SearchError = "failed to fetch cocktails, please try again"
	ErrSuperseded       SearchError = "suggestion request superseded by a newer query"
	ErrCocktailNotFound SearchError = "cocktail not found"
	ErrEmptyQuery       SearchError = "query cannot be empty"
	ErrNilInput         SearchError = "input cannot be nil"
	ErrNilConfig        SearchError = "config cannot be nil"
	ErrNilClient        SearchError = "recipe source client cannot be nil"
)
