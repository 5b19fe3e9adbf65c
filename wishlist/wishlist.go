package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kirana/models"
	"kirana/products"
	"kirana/saveditems"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves the /api/wishlists surface. Wishlist entries are pinned
// to quantity 1 and duplicate adds are rejected as successful no-ops.
type Handler struct {
	svc *saveditems.Service
}

func NewHandler(svc *saveditems.Service) *Handler {
	return &Handler{svc: svc}
}

type itemPayload struct {
	ProductID string `json:"productId"`
}

func decodeItem(r *http.Request) (itemPayload, bool) {
	var payload itemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		return payload, false
	}
	return payload, true
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.svc.GetList(ctx, models.ListKindWishlist, ps.ByName("userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve wishlist", utils.KindStoreFailure)
		return
	}

	resolved, err := products.ResolveByIDs(ctx, saveditems.ProductIDs(list))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load product details", utils.KindStoreFailure)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, saveditems.BuildView(list, resolved))
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	list, outcome, err := h.svc.AddItem(ctx, models.ListKindWishlist, ps.ByName("userId"), payload.ProductID, 1)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to wishlist", utils.KindStoreFailure)
		return
	}
	if outcome == saveditems.OutcomeAlreadyPresent {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message":  "Product already in wishlist",
			"kind":     utils.KindAlreadyPresent,
			"wishlist": list,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":  "Product added to wishlist",
		"wishlist": list,
	})
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	list, outcome, err := h.svc.RemoveItem(ctx, models.ListKindWishlist, ps.ByName("userId"), payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from wishlist", utils.KindStoreFailure)
		return
	}
	if outcome == saveditems.OutcomeNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not in wishlist", utils.KindNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Product removed from wishlist",
		"wishlist": list,
	})
}

// MoveToCart transfers the product into the cart, incrementing an
// existing cart entry by the carried quantity.
func (h *Handler) MoveToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	outcome, err := h.svc.MoveItem(ctx, models.ListKindWishlist, models.ListKindCart, ps.ByName("userId"), payload.ProductID)
	if err != nil {
		var perr *saveditems.PartialError
		if errors.As(err, &perr) {
			utils.RespondWithError(w, http.StatusInternalServerError, perr.Error(), utils.KindPartialFailure)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to move product", utils.KindStoreFailure)
		return
	}
	if outcome == saveditems.OutcomeSourceNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not in wishlist", utils.KindNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Product moved to cart",
		"outcome": outcome.String(),
	})
}
