package products

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

const cacheKey = "products"

func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload", utils.KindBadRequest)
		return
	}
	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.DefaultQuantity == 0 {
		product.DefaultQuantity = 1
	}

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add product", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "product", Method: "create", EntityID: product.ID.Hex(), Title: product.Title})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Product added successfully",
		"product": product,
	})
}

func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, _ := rdx.RdxGet(ctx, cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	products, err := loadAll(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get all products", utils.KindStoreFailure)
		return
	}
	if !utils.RespondList(w, products, "No products found") {
		return
	}
	rdx.RdxSet(ctx, cacheKey, string(utils.ToJSON(products)))
}

func GetProductByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID", utils.KindBadRequest)
		return
	}

	var product models.Product
	err = db.ProductsCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found", utils.KindNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID", utils.KindBadRequest)
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
	var updated models.Product
	err = db.ProductsCollection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": patch}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "product", Method: "update", EntityID: updated.ID.Hex(), Title: updated.Title})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Product updated successfully",
		"product": updated,
	})
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID", utils.KindBadRequest)
		return
	}

	var deleted models.Product
	err = db.ProductsCollection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found", utils.KindNotFound)
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product", utils.KindStoreFailure)
		return
	}

	mq.Emit(ctx, models.Index{EntityType: "product", Method: "delete", EntityID: deleted.ID.Hex()})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Product deleted successfully",
		"product": deleted,
	})
}

func loadAll(ctx context.Context) ([]models.Product, error) {
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ResolveByIDs fetches the products for the given hex ids, keyed by id.
// Ids that no longer resolve are simply absent from the map.
func ResolveByIDs(ctx context.Context, ids []string) (map[string]models.Product, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	resolved := make(map[string]models.Product, len(objIDs))
	if len(objIDs) == 0 {
		return resolved, nil
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		resolved[p.ID.Hex()] = p
	}
	return resolved, nil
}
