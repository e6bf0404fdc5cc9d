// Package normalize turns the free-form size, validity and price text found in
// plan catalogs into canonical values.
//
// None of the functions return errors. Unreadable input degrades to a
// documented default: 0 GB for sizes, 30 days for validity and an absent
// price.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/agentstation/pricemap/pkg/constants"
)

var (
	sizeNoise    = regexp.MustCompile(`[^\d.MGTB]`)
	sizeNumber   = regexp.MustCompile(`[\d.]+`)
	explicitDays = regexp.MustCompile(`(\d+)\s*DAY`)
	priceNoise   = regexp.MustCompile(`[",₦\s\p{Zs}]`)
)

// SizeGB converts a size string such as "500 MB", "1.5GB" or "1TB" to
// gigabytes rounded to three decimals.
//
// Units are detected by substring after noise is stripped: MB wins over TB,
// and anything else is read as GB.
func SizeGB(raw string) float64 {
	s := sizeNoise.ReplaceAllString(strings.ToUpper(raw), "")

	token := sizeNumber.FindString(s)
	if token == "" {
		return 0
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	switch {
	case strings.Contains(s, "MB"):
		value /= constants.MegabytesPerGigabyte
	case strings.Contains(s, "TB"):
		value *= constants.MegabytesPerGigabyte
	}
	return Round(value)
}

// Round rounds a size to the canonical precision.
func Round(gb float64) float64 {
	scale := math.Pow10(constants.SizeDecimals)
	return math.Round(gb*scale) / scale
}

// ValidityDays maps a validity description to a number of days.
//
// Rules are checked in order and the first match wins, so "7 DAYS (30 DAYS)"
// is 30 and "11 DAYS" is 1 because it contains "1 DAY".
func ValidityDays(raw string) int {
	s := strings.ToUpper(raw)

	switch {
	case strings.Contains(s, "MONTH"), strings.Contains(s, "30 DAY"):
		return 30
	case strings.Contains(s, "WEEK"), strings.Contains(s, "7 DAY"):
		return 7
	case strings.Contains(s, "1 DAY"), strings.Contains(s, "DAILY"), strings.Contains(s, "24 HOUR"):
		return 1
	}

	if m := explicitDays.FindStringSubmatch(s); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			return days
		}
	}
	return constants.DefaultValidityDays
}

// Price strips quotes, thousands separators, the naira sign and whitespace
// from a price and parses it. It returns nil when nothing numeric remains.
func Price(raw string) *float64 {
	s := priceNoise.ReplaceAllString(raw, "")
	if s == "" {
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}
