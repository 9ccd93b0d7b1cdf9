// Package risk maps a predicted ASD probability to a discrete risk tier.
package risk

// Level is one of the three screening risk tiers.
type Level string

const (
	Low      Level = "Low"
	Moderate Level = "Moderate"
	High     Level = "High"
)

// Tier thresholds on the positive-class probability. Each tier's upper
// bound is exclusive: exactly 0.3 is Moderate, exactly 0.6 is High.
const (
	ModerateThreshold = 0.3
	HighThreshold     = 0.6
)

// Classify derives the risk tier from a probability in [0,1].
func Classify(probability float64) Level {
	switch {
	case probability < ModerateThreshold:
		return Low
	case probability < HighThreshold:
		return Moderate
	default:
		return High
	}
}
