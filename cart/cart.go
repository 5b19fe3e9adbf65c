package cart

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

// Handler serves the /api/carts surface on top of the saved-items engine.
type Handler struct {
	svc *saveditems.Service
}

func NewHandler(svc *saveditems.Service) *Handler {
	return &Handler{svc: svc}
}

type itemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func decodeItem(r *http.Request) (itemPayload, bool) {
	var payload itemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		return payload, false
	}
	return payload, true
}

// GetCart returns the user's cart with product details populated. A user
// with no cart document gets an empty list, never a 404.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := h.svc.GetList(ctx, models.ListKindCart, ps.ByName("userId"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart", utils.KindStoreFailure)
		return
	}
	respondWithList(ctx, w, http.StatusOK, list)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	list, outcome, err := h.svc.AddItem(ctx, models.ListKindCart, ps.ByName("userId"), payload.ProductID, payload.Quantity)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add to cart", utils.KindStoreFailure)
		return
	}
	if outcome == saveditems.OutcomeAlreadyPresent {
		// Success-shaped no-op, distinguishable from a real insert.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Product already in cart",
			"kind":    utils.KindAlreadyPresent,
			"cart":    list,
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Product added to cart",
		"cart":    list,
	})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	list, outcome, err := h.svc.RemoveItem(ctx, models.ListKindCart, ps.ByName("userId"), payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove from cart", utils.KindStoreFailure)
		return
	}
	if outcome == saveditems.OutcomeNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Product not in cart", utils.KindNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Product removed from cart",
		"cart":    list,
	})
}

func (h *Handler) IncreaseQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.changeQuantity(w, r, ps, h.svc.IncreaseQuantity)
}

func (h *Handler) DecreaseQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.changeQuantity(w, r, ps, h.svc.DecreaseQuantity)
}

func (h *Handler) changeQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params,
	op func(context.Context, string, string, string) (*models.SavedList, saveditems.Outcome, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	list, outcome, err := op(ctx, models.ListKindCart, ps.ByName("userId"), payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update cart", utils.KindStoreFailure)
		return
	}
	switch outcome {
	case saveditems.OutcomeNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "Product not in cart", utils.KindNotFound)
	case saveditems.OutcomeRemoved:
		// Decrement at quantity 1 drops the entry; 0 is never stored.
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Product removed from cart",
			"cart":    list,
		})
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Cart updated",
			"cart":    list,
		})
	}
}

// MoveToWishlist transfers the product out of the cart. Destination is
// written first; when the wishlist already holds the product the cart
// entry is still removed and the wishlist stays as it was.
func (h *Handler) MoveToWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	payload, ok := decodeItem(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}

	outcome, err := h.svc.MoveItem(ctx, models.ListKindCart, models.ListKindWishlist, ps.ByName("userId"), payload.ProductID)
	respondMove(w, outcome, err, "Product moved to wishlist", "Product not in cart")
}

// respondMove maps a move outcome onto the wire contract.
func respondMove(w http.ResponseWriter, outcome saveditems.Outcome, err error, movedMsg, missingMsg string) {
	if err != nil {
		var perr *saveditems.PartialError
		if errors.As(err, &perr) {
			utils.RespondWithError(w, http.StatusInternalServerError, perr.Error(), utils.KindPartialFailure)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to move product", utils.KindStoreFailure)
		return
	}
	switch outcome {
	case saveditems.OutcomeSourceNotFound:
		utils.RespondWithError(w, http.StatusNotFound, missingMsg, utils.KindNotFound)
	case saveditems.OutcomeAlreadyAtDestination:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Product already at destination",
			"kind":    utils.KindAlreadyPresent,
			"outcome": outcome.String(),
		})
	default:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": movedMsg,
			"outcome": outcome.String(),
		})
	}
}

// respondWithList writes the populated view of a list.
func respondWithList(ctx context.Context, w http.ResponseWriter, status int, list *models.SavedList) {
	resolved, err := products.ResolveByIDs(ctx, saveditems.ProductIDs(list))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load product details", utils.KindStoreFailure)
		return
	}
	utils.RespondWithJSON(w, status, saveditems.BuildView(list, resolved))
}
