package identity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// NormalizeDisplayName trims and title-cases a display name as received from
// the identity subsystem, so names render consistently regardless of how the
// account was registered.
func NormalizeDisplayName(value string) (string, error) {
	normalized := strings.Join(strings.Fields(value), " ")

	if normalized == "" {
		return "", fmt.Errorf("display name cannot be empty")
	}
	if len(normalized) > 100 {
		return "", fmt.Errorf("display name cannot exceed 100 characters")
	}

	return titleCaser.String(normalized), nil
}
