package products

import (
	"context"
	"net/http"
	"time"

	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
)

// GetProductOrSearch backs GET /api/products/:id/:title. httprouter
// cannot register the literal segment "search" underneath the :id
// wildcard, so /api/products/search/:title arrives here and anything
// else at this depth is a 404.
func GetProductOrSearch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "search" {
		utils.RespondWithError(w, http.StatusNotFound, "Not found", utils.KindNotFound)
		return
	}
	SearchByTitle(w, r, ps)
}

// SearchByTitle loads the full product set and keeps the products whose
// title contains the query as an unanchored, case-insensitive substring.
// An empty match set is a 404.
func SearchByTitle(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := ps.ByName("title")

	products, err := loadAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search products", utils.KindStoreFailure)
		return
	}

	matched := filterByTitle(products, query)
	utils.RespondList(w, matched, "No products match the search")
}

func filterByTitle(products []models.Product, query string) []models.Product {
	var matched []models.Product
	for _, p := range products {
		if utils.ContainsIgnoreCase(p.Title, query) {
			matched = append(matched, p)
		}
	}
	return matched
}
