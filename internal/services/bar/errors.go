package bar

// BarError is a failure from the bar service
type BarError string

// Error implements the error interface
func (e BarError) Error() string {
	return string(e)
}

const (
	ErrActionNotFound   BarError = "pending action not found"
	ErrNilCocktail      BarError = "cocktail cannot be nil"
	ErrNilInput         BarError = "input cannot be nil"
	ErrNilConfig        BarError = "config cannot be nil"
	ErrNilStateRepo     BarError = "state repository cannot be nil"
	ErrNilClock         BarError = "clock cannot be nil"
	ErrNilUUIDGenerator BarError = "uuid generator cannot be nil"
	ErrNilCalculator    BarError = "alcohol calculator cannot be nil"
)
