// Package identity validates and formats the committer identity written
// to the global git configuration.
package identity

import (
	"fmt"
	"unicode"
)

// InvalidNameMessage is shown inline when the committer name would be
// stripped to nothing by git's ident cleanup.
const InvalidNameMessage = "Name is invalid, it consists only of disallowed characters."

// ValidateName returns InvalidNameMessage when the name contains no letter
// or digit at all: git strips punctuation crud, control characters, and
// surrounding whitespace from author idents, so a name without a single
// word character cannot survive the cleanup. Any other non-empty content is
// valid and yields "". The empty string also yields "" so an untouched
// field is not flagged before the user types anything.
func ValidateName(name string) string {
	if name == "" {
		return ""
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return ""
		}
	}
	return InvalidNameMessage
}

// Format renders the identity the way git does in commit objects.
func Format(name, email string) string {
	return fmt.Sprintf("%s <%s>", name, email)
}
