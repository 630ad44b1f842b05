package validation

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidHexColor accepts "#RRGGBB" styling values for event details.
func IsValidHexColor(color string) bool {
	return hexColorRe.MatchString(color)
}
