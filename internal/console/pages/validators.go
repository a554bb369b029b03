package pages

import (
	"regexp"
	"strings"
)

// emailPattern accepts the conventional local@domain.tld shape. The
// leading-dot and double-dot exclusions are checked separately since RE2 has
// no lookahead.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9_'+.-]*[A-Za-z0-9_+-]@([A-Za-z0-9][A-Za-z0-9-]*\.)+[A-Za-z]{2,}$`)

func required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func isValidEmail(value string) bool {
	if strings.HasPrefix(value, ".") || strings.Contains(value, "..") {
		return false
	}
	return emailPattern.MatchString(value)
}
