package route

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// fieldSep and recordSep keep adjacent fields from running together in the digest.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// Fingerprint returns an xxhash digest of the registered connections.
// Origins are hashed in sorted order and connections in registration order,
// so two graphs built by the same registration sequence share a fingerprint.
// Any registration changes it.
//
// Complexity: O(L log L + C).
func (g *Graph) Fingerprint() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := xxhash.New()
	for _, c := range g.connectionsLocked() {
		_, _ = d.WriteString(c.Origin)
		_, _ = d.WriteString(fieldSep)
		_, _ = d.WriteString(c.Destination)
		_, _ = d.WriteString(fieldSep)
		_, _ = d.WriteString(strconv.FormatFloat(c.Distance, 'g', -1, 64))
		_, _ = d.WriteString(fieldSep)
		_, _ = d.WriteString(strconv.Itoa(c.SeatsRemaining))
		_, _ = d.WriteString(fieldSep)
		_, _ = d.WriteString(strconv.FormatBool(c.PeakHour))
		_, _ = d.WriteString(fieldSep)
		_, _ = d.WriteString(strconv.Itoa(c.DiscountPercent))
		_, _ = d.WriteString(recordSep)
	}

	return d.Sum64()
}
