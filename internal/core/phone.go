package core

import "strings"

// validOperatorPrefixes are the three-digit prefixes assigned to
// Bangladeshi mobile operators. Anything else fails phone validation.
var validOperatorPrefixes = []string{"017", "013", "016", "018", "019", "014", "015"}

// NormalizePhone reduces free-form phone text to the 11-digit national
// format (leading trunk zero) where the input allows it:
//
//	"+880 1712-345678" -> "01712345678"
//	"8801712345678"    -> "01712345678"
//	"1712345678"       -> "01712345678"
//
// Inputs that match none of the country-code or bare-subscriber shapes
// are returned digits-only but otherwise unchanged.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 13 && strings.HasPrefix(digits, "880"):
		// Dropping "88" leaves the national trunk zero in place.
		return digits[2:]
	case len(digits) == 13 && strings.HasPrefix(digits, "88"):
		return digits[2:]
	case len(digits) == 10 && strings.HasPrefix(digits, "1"):
		return "0" + digits
	}
	return digits
}

// ValidPhone reports whether a normalized phone number is exactly 11
// digits and carried by a known operator prefix.
func ValidPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	prefix := phone[:3]
	for _, p := range validOperatorPrefixes {
		if prefix == p {
			return true
		}
	}
	return false
}
