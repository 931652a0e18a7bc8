package verification

import "regexp"

var idPattern = regexp.MustCompile(`^BFT[0-9]{5}$`)

// ValidateIDFormat reports whether id is "BFT" followed by exactly five digits.
// Lookup does not consult it; Verify does only when format enforcement is on.
func ValidateIDFormat(id string) bool {
	return idPattern.MatchString(id)
}
