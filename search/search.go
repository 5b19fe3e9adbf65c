// Package search serves quick product-title lookups from the redis index
// maintained by the mq catalog worker, falling back to the store when the
// index is cold.
package search

import (
	"context"
	"net/http"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/mq"
	"kirana/rdx"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Suggestion is one autocomplete hit.
type Suggestion struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
}

func QueryProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query().Get("q")
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "q is required", utils.KindBadRequest)
		return
	}

	titles, err := rdx.RdxHGetAll(ctx, mq.ProductTitleIndex)
	if err != nil || len(titles) == 0 {
		titles, err = titlesFromStore(ctx)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Search unavailable", utils.KindStoreFailure)
			return
		}
	}

	hits := []Suggestion{}
	for id, title := range titles {
		if utils.ContainsIgnoreCase(title, query) {
			hits = append(hits, Suggestion{ProductID: id, Title: title})
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, hits)
}

func titlesFromStore(ctx context.Context) (map[string]string, error) {
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prods []models.Product
	if err := cursor.All(ctx, &prods); err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(prods))
	for _, p := range prods {
		titles[p.ID.Hex()] = p.Title
	}
	return titles, nil
}
