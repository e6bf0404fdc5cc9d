package catalogs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Network is a mobile network operator name in canonical (upper case) form.
type Network string

// Known networks.
const (
	NetworkMTN     Network = "MTN"
	NetworkGlo     Network = "GLO"
	NetworkAirtel  Network = "AIRTEL"
	Network9Mobile Network = "9MOBILE"
	NetworkSmile   Network = "SMILE"
)

var upper = cases.Upper(language.Und)

// ParseNetwork canonicalises a network name so that "mtn", " MTN " and the
// full-width "ＭＴＮ" compare equal.
func ParseNetwork(raw string) Network {
	return Network(upper.String(norm.NFKC.String(strings.TrimSpace(raw))))
}

// String returns the network name.
func (n Network) String() string {
	return string(n)
}

// ID returns the numeric network identifier used by downstream plan tables.
// Matching is by substring in a fixed order, so "9MOBILE" maps through
// "MOBILE". Unknown networks are 0.
func (n Network) ID() int {
	name := upper.String(string(n))
	switch {
	case strings.Contains(name, "MTN"):
		return 1
	case strings.Contains(name, "GLO"):
		return 2
	case strings.Contains(name, "AIRTEL"):
		return 3
	case strings.Contains(name, "MOBILE"):
		return 4
	case strings.Contains(name, "SMILE"):
		return 5
	default:
		return 0
	}
}
