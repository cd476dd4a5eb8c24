package orders

import (
	"fmt"
	"time"
)

// Business reference prefixes. The ref is the human-readable order number
// shown to customers and admins; rows are keyed by a server-assigned UUID.
const (
	RefPrefixCV   = "CV"
	RefPrefixLogo = "LOGO"
)

// NewRef builds a business reference like "CV-1735689600000". The table
// carries a UNIQUE constraint on the ref, so a millisecond collision surfaces
// as a duplicate-order failure instead of overwriting anything.
func NewRef(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
