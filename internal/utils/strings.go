package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DisplayName joins first name and surname the way bookings denormalize it.
func DisplayName(first, surname string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(surname))
}
