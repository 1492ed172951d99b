package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// encode serializes a value and wraps it in a reversible text-safe encoding.
// This is obfuscation, not encryption: it deters casual inspection of the
// database file and nothing more.
func encode(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// decode reverses encode into dest. It reports false for anything it cannot
// decode (corrupt base64, foreign bytes, mismatched JSON) so callers can fall
// back to defaults instead of failing.
func decode(stored string, dest any) bool {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}
