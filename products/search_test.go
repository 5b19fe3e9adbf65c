package products

import (
	"testing"

	"kirana/models"
)

func catalog(titles ...string) []models.Product {
	out := make([]models.Product, 0, len(titles))
	for _, t := range titles {
		out = append(out, models.Product{Title: t})
	}
	return out
}

func TestFilterByTitleSubstring(t *testing.T) {
	products := catalog("Soap Bar", "Shampoo", "Hand Soap")

	matched := filterByTitle(products, "soap")
	if len(matched) != 2 {
		t.Fatalf("matched %d products, want 2", len(matched))
	}
	if matched[0].Title != "Soap Bar" || matched[1].Title != "Hand Soap" {
		t.Fatalf("matched = %q, %q", matched[0].Title, matched[1].Title)
	}
}

func TestFilterByTitleCaseInsensitive(t *testing.T) {
	products := catalog("Basmati Rice 5kg")

	for _, q := range []string{"RICE", "rice", "Rice", "maTI"} {
		if got := filterByTitle(products, q); len(got) != 1 {
			t.Fatalf("query %q matched %d products, want 1", q, len(got))
		}
	}
}

func TestFilterByTitleNoMatch(t *testing.T) {
	products := catalog("Soap Bar", "Shampoo")

	if got := filterByTitle(products, "toothpaste"); len(got) != 0 {
		t.Fatalf("matched %d products, want 0", len(got))
	}
}
