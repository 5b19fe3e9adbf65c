package utils

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// ContainsIgnoreCase reports whether substr occurs anywhere in str,
// ignoring case. Matches are unanchored.
func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

func GetUUID() string {
	return uuid.New().String()
}

// ToJSON marshals v, returning "null" on failure so cache writes stay sane.
func ToJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}
