package ports

import "time"

// Clock supplies the current time to use cases, so that "now" is an explicit input
// of eligibility evaluation rather than a hidden global.
type Clock interface {
	Now() time.Time
}
