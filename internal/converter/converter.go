package converter

import "time"

// now is swapped in tests that depend on lockout or age values.
var now = time.Now

func stringsOrEmpty[T ~[]string](in T) []string {
	if in == nil {
		return []string{}
	}
	return []string(in)
}
