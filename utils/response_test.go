package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondListEmptyCollectionIsNotFound(t *testing.T) {
	for _, items := range [][]string{nil, {}} {
		rec := httptest.NewRecorder()
		if RespondList(rec, items, "No widgets found") {
			t.Fatal("empty collection reported as written")
		}
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "No widgets found" || body["kind"] != KindNotFound {
			t.Fatalf("body = %v", body)
		}
	}
}

func TestRespondListWritesNonEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	if !RespondList(rec, []int{3, 1}, "No numbers found") {
		t.Fatal("non-empty collection reported as 404")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var got []int
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Fatalf("body = %v", got)
	}
}
