package ledger

// LedgerError is a validation or lookup failure from the patron ledger
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrDuplicateName    LedgerError = "a patron with this name already exists"
	ErrPatronNotFound   LedgerError = "patron not found"
	ErrMissingFields    LedgerError = "please fill in all fields"
	ErrInvalidBodyMass  LedgerError = "body mass must be a positive number of kilograms"
	ErrNilConfig        LedgerError = "config cannot be nil"
	ErrNilUUIDGenerator LedgerError = "UUID generator cannot be nil"
)
