// Package orders records placed orders. Orders are append-only: created
// once with a snapshot of the product's title and price, then only read.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createPayload struct {
	UserID            string `json:"userId"`
	ProductID         string `json:"productId"`
	Quantity          int    `json:"quantity"`
	ShippingAddressID string `json:"shippingAddress"`
}

// CreateOrder inserts a new order. The product's title and selling price
// are copied into the order so later catalog edits cannot change what
// was bought. No stock check, no total computation.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "productId is required", utils.KindBadRequest)
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	productID, err := primitive.ObjectIDFromHex(payload.ProductID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID", utils.KindBadRequest)
		return
	}

	var product models.Product
	err = db.ProductsCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order", utils.KindStoreFailure)
		return
	}

	now := time.Now()
	order := models.Order{
		ID:                primitive.NewObjectID(),
		OrderRef:          utils.GetUUID(),
		UserID:            payload.UserID,
		ProductID:         payload.ProductID,
		ProductTitle:      product.Title,
		UnitPrice:         product.SellingPrice,
		Quantity:          payload.Quantity,
		OrderDate:         now,
		ShippingAddressID: payload.ShippingAddressID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order", utils.KindStoreFailure)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrders lists every order expanded with its shipping address. An
// empty collection signals 404 per the storefront contract.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.OrdersCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get orders", utils.KindStoreFailure)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get orders", utils.KindStoreFailure)
		return
	}
	addresses, err := resolveAddresses(ctx, orders)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get orders", utils.KindStoreFailure)
		return
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		view := models.OrderView{Order: o}
		if a, ok := addresses[o.ShippingAddressID]; ok {
			a := a
			view.Address = &a
		}
		views = append(views, view)
	}

	utils.RespondList(w, views, "No orders found")
}

func resolveAddresses(ctx context.Context, orders []models.Order) (map[string]models.Address, error) {
	ids := make([]primitive.ObjectID, 0, len(orders))
	for _, o := range orders {
		if objID, err := primitive.ObjectIDFromHex(o.ShippingAddressID); err == nil {
			ids = append(ids, objID)
		}
	}
	resolved := make(map[string]models.Address, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	cursor, err := db.AddressesCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	for _, a := range addresses {
		resolved[a.ID.Hex()] = a
	}
	return resolved, nil
}
