package cli

import (
	"fmt"
	"strings"
	"time"
)

// visitPassCode derives the pass code shown at the venue from the business
// id and the chosen slot start. Deterministic on purpose: the same booking
// always renders the same code.
func visitPassCode(businessID string, start time.Time) string {
	return strings.ToUpper(fmt.Sprintf("RLV-%s-%d", businessID, start.Unix()))
}
