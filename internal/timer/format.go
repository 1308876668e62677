package timer

import "fmt"

// FormatSeconds renders a duration the way period messages and the
// countdown display expect it: under a minute in seconds, exactly one
// minute as "1 minute", and anything longer in whole minutes with the
// remainder dropped (integer division, never rounded). 90 seconds is
// therefore "1 minutes"; that plural is intentional and pinned by tests.
func FormatSeconds(n int) string {
	if n < 60 {
		return fmt.Sprintf("%d seconds", n)
	}
	if n == 60 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n/60)
}
