package cocktaildb

// ClientError is a failure talking to the recipe source
type ClientError string

// Error implements the error interface
func (e ClientError) Error() string {
	return string(e)
}

const (
	// ErrNetwork is the parent of every failure to obtain recipes
	ErrNetwork ClientError = "recipe source unavailable"

	ErrUnreachable       ClientError = "recipe source unreachable"
	ErrMalformedResponse ClientError = "malformed recipe source response"
)

// Is lets errors.Is match ErrNetwork for any client error
func (e ClientError) Is(target error) bool {
	t, ok := target.(ClientError)
	if !ok {
		return false
	}
	return t == e || t == ErrNetwork
}
