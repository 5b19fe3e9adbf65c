package categories

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/mq"
	"kirana/rdx"
	"kirana/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheKey = "categories"

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload", utils.KindBadRequest)
		return
	}
	// Fields are stored as provided; there is no validation layer.
	now := time.Now()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := db.CategoriesCollection.InsertOne(ctx, category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add category", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "category", Method: "create", EntityID: category.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":  "Category added successfully",
		"category": category,
	})
}

// GetCategories lists every category. An empty store is reported as 404,
// matching the storefront's contract; the read itself never fails on empty.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, _ := rdx.RdxGet(ctx, cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	cursor, err := db.CategoriesCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all categories", utils.KindStoreFailure)
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all categories", utils.KindStoreFailure)
		return
	}

	if !utils.RespondList(w, categories, "No categories found") {
		return
	}
	rdx.RdxSet(ctx, cacheKey, string(utils.ToJSON(categories)))
}

func GetCategoryByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category ID", utils.KindBadRequest)
		return
	}

	var category models.Category
	err = db.CategoriesCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&category)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found", utils.KindNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, category)
}

// UpdateCategory applies the request body as a field patch. Any field may
// change; unknown fields pass through to the store uninterpreted.
func UpdateCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category ID", utils.KindBadRequest)
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
	var updated models.Category
	err = db.CategoriesCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "category", Method: "update", EntityID: updated.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Category updated successfully",
		"category": updated,
	})
}

// DeleteCategory removes the category only; products keep their stale
// categoryId reference (no cascade).
func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category ID", utils.KindBadRequest)
		return
	}

	var deleted models.Category
	err = db.CategoriesCollection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "category", Method: "delete", EntityID: deleted.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Category deleted successfully",
		"category": deleted,
	})
}
