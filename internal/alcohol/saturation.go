package alcohol

import (
	"math"
	"time"

	"github.com/KirkDiggler/mixology/internal/models"
)

const (
	// EliminationRate is the first-order clearance coefficient per hour
	EliminationRate = 0.15

	// DistributionFactor converts body mass to an effective distribution volume
	DistributionFactor = 0.68

	// OverLimitThreshold is the saturation above which a patron is over the limit
	OverLimitThreshold = 0.08
)

// Remaining is the alcohol from drink still unmetabolised at now.
// Drinks stamped after now are treated as just consumed.
func Remaining(drink models.Drink, now time.Time) float64 {
	elapsed := now.Sub(drink.Timestamp).Hours()
	if elapsed < 0 {
		elapsed = 0
	}
	return drink.AlcoholContent * math.Exp(-EliminationRate*elapsed)
}

// Saturation estimates the patron's blood alcohol saturation at now
func Saturation(patron *models.Patron, now time.Time) float64 {
	if patron == nil || patron.BodyMass <= 0 {
		return 0
	}

	total := 0.0
	for _, drink := range patron.Drinks {
		total += Remaining(drink, now)
	}
	return total / (patron.BodyMass * DistributionFactor)
}

// IsOverLimit classifies a saturation value
func IsOverLimit(saturation float64) bool {
	return saturation > OverLimitThreshold
}
