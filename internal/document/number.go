package document

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberValue extracts the numeric part of a document number like "INV-042".
// Anything unparseable counts as 1, matching how a hand-edited number is
// treated when the next one is generated.
func NumberValue(number string) int {
	_, suffix, found := strings.Cut(number, "-")
	if !found {
		return 1
	}

	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 1
	}

	return n
}

// FormatNumber builds a document number with the kind's prefix and a
// zero-padded three digit counter.
func FormatNumber(kind Kind, n int) string {
	return fmt.Sprintf("%s-%03d", kind.Prefix(), n)
}
