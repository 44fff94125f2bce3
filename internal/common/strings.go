package common

import "strings"

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// JoinQuoted quotes every name and joins them with ", ".
func JoinQuoted(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}

	return strings.Join(quoted, ", ")
}
