// Package addresses implements the flat address CRUD surface. Ownership
// is the back-reference variant: each address carries its owner's user id
// and users hold no address arrays.
package addresses

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var address models.Address
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload", utils.KindBadRequest)
		return
	}
	if address.Country == "" {
		address.Country = "India"
	}
	now := time.Now()
	address.ID = primitive.NewObjectID()
	address.CreatedAt = now
	address.UpdatedAt = now

	if _, err := db.AddressesCollection.InsertOne(ctx, address); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add address", utils.KindStoreFailure)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Address added successfully",
		"address": address,
	})
}

func GetAddresses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.AddressesCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all addresses", utils.KindStoreFailure)
		return
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all addresses", utils.KindStoreFailure)
		return
	}
	utils.RespondList(w, addresses, "No addresses found")
}

func GetAddressByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid address ID", utils.KindBadRequest)
		return
	}

	var address models.Address
	err = db.AddressesCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&address)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Address not found", utils.KindNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, address)
}

// UpdateAddress patches the address directly by id; it is not user-scoped.
func UpdateAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid address ID", utils.KindBadRequest)
		return
	}

	var patch bson.M
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload", utils.KindBadRequest)
		return
	}
	delete(patch, "_id")
	patch["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Address
	err = db.AddressesCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Address not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update address", utils.KindStoreFailure)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Address updated successfully",
		"address": updated,
	})
}

// DeleteAddress removes the document; there is no second write to any
// user record.
func DeleteAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid address ID", utils.KindBadRequest)
		return
	}

	var deleted models.Address
	err = db.AddressesCollection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Address not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete address", utils.KindStoreFailure)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Address deleted successfully",
		"address": deleted,
	})
}
