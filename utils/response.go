package utils

import (
	"encoding/json"
	"net/http"
)

// M is shorthand for ad-hoc JSON payloads.
type M map[string]interface{}

// Stable machine-readable error kinds carried next to the human message.
const (
	KindNotFound       = "not_found"
	KindBadRequest     = "bad_request"
	KindStoreFailure   = "store_failure"
	KindPartialFailure = "partial_failure"
	KindAlreadyPresent = "already_present" // success-shaped, never an error
)

// RespondWithJSON sends a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError sends {"error": msg, "kind": kind}.
func RespondWithError(w http.ResponseWriter, code int, msg, kind string) {
	RespondWithJSON(w, code, M{"error": msg, "kind": kind})
}

// RespondList writes items as a 200 JSON array, mapping an empty slice
// to a 404 carrying emptyMsg. Whole-collection listings use this;
// per-user lists (carts, wishlists, a user's addresses) respond
// empty-success instead. Returns false when the 404 was written.
func RespondList[T any](w http.ResponseWriter, items []T, emptyMsg string) bool {
	if len(items) == 0 {
		RespondWithError(w, http.StatusNotFound, emptyMsg, KindNotFound)
		return false
	}
	RespondWithJSON(w, http.StatusOK, items)
	return true
}
