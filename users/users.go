// Package users exposes the identity surface. Create and read only;
// there is no update or delete route.
package users

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
	"golang.org/x/crypto/bcrypt"
)

func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload", utils.KindBadRequest)
		return
	}

	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password", utils.KindStoreFailure)
			return
		}
		user.Password = string(hashed)
	}

	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := db.UsersCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add user", utils.KindStoreFailure)
		return
	}

	user.Password = ""
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "User added successfully",
		"user":    user,
	})
}

func GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.UsersCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all users", utils.KindStoreFailure)
		return
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all users", utils.KindStoreFailure)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	utils.RespondList(w, users, "No users found")
}

func GetUserByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID", utils.KindBadRequest)
		return
	}

	var user models.User
	err = db.UsersCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found", utils.KindNotFound)
		return
	}

	user.Password = ""
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// ListAddresses returns the addresses whose ownerUserId matches the path
// id. An unknown user or a user without addresses both yield an empty
// array, not an error.
func ListAddresses(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("id")

	cursor, err := db.AddressesCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get addresses", utils.KindStoreFailure)
		return
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get addresses", utils.KindStoreFailure)
		return
	}
	if addresses == nil {
		addresses = []models.Address{}
	}

	utils.RespondWithJSON(w, http.StatusOK, addresses)
}
