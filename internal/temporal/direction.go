package temporal

import (
	"strings"
)

// Vocabulary that signals which way an ambiguous expression should resolve.
var (
	pastIndicators = map[string]bool{
		"last": true, "ago": true, "previous": true,
		"before": true, "yesterday": true, "past": true,
	}
	futureIndicators = map[string]bool{
		"next": true, "upcoming": true, "in": true,
		"after": true, "tomorrow": true, "coming": true,
	}
)

// DetectDirection inspects the input for past or future vocabulary.
// It returns DirectionAuto when the text contains both kinds or neither;
// Parse treats that as a future preference.
func DetectDirection(text string) Direction {
	hasPast, hasFuture := false, false
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if pastIndicators[word] {
			hasPast = true
		}
		if futureIndicators[word] {
			hasFuture = true
		}
	}

	switch {
	case hasPast && !hasFuture:
		return DirectionPast
	case hasFuture && !hasPast:
		return DirectionFuture
	}
	return DirectionAuto
}
