package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency amounts are carried as integer pence so totals add up exactly.

// FormatPence renders pence as a plain decimal amount, e.g. 27500 -> "275.00".
func FormatPence(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s%d.%02d", sign, pence/100, pence%100)
}

// FormatPounds renders pence for display, e.g. 27500 -> "£275.00".
func FormatPounds(pence int64) string {
	if pence < 0 {
		return "-£" + FormatPence(-pence)
	}
	return "£" + FormatPence(pence)
}

// ParsePoundsToPence parses "£275.00", "275.00" or "275" into pence.
func ParsePoundsToPence(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "£")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, found := strings.Cut(s, ".")
	pounds, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	pence := pounds * 100
	if found {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		p, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, err
		}
		pence += p
	}
	if neg {
		pence = -pence
	}
	return pence, nil
}
