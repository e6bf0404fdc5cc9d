package catalogs

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/agentstation/pricemap/pkg/normalize"
)

// Key identifies a market slot. Offers from any source with an equal key are
// the same plan for pricing purposes.
type Key struct {
	Network      Network `json:"network" yaml:"network"`
	SizeGB       float64 `json:"size_gb" yaml:"size_gb"`
	ValidityDays int     `json:"validity_days" yaml:"validity_days"`
}

// NewKey builds a key, rounding the size to canonical precision.
func NewKey(network Network, sizeGB float64, validityDays int) Key {
	return Key{
		Network:      network,
		SizeGB:       normalize.Round(sizeGB),
		ValidityDays: validityDays,
	}
}

// String returns a compact form such as "MTN/0.488GB/30d".
func (k Key) String() string {
	return fmt.Sprintf("%s/%sGB/%dd", k.Network, FormatSize(k.SizeGB), k.ValidityDays)
}

// Compare orders keys by network, then size, then validity.
func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.Network, other.Network); c != 0 {
		return c
	}
	if c := cmp.Compare(k.SizeGB, other.SizeGB); c != 0 {
		return c
	}
	return cmp.Compare(k.ValidityDays, other.ValidityDays)
}

// FormatSize renders a size in gigabytes without trailing zeros.
func FormatSize(gb float64) string {
	return strconv.FormatFloat(gb, 'f', -1, 64)
}
