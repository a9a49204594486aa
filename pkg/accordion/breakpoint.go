package accordion

// Disabled reports whether collapsing is switched off at the given viewport
// width. above is checked first: width >= *above disables; otherwise
// width <= *below disables. Inverted thresholds are taken as configured.
func Disabled(width float64, above, below *float64) bool {
	if above != nil && width >= *above {
		return true
	}
	if below != nil && width <= *below {
		return true
	}
	return false
}
