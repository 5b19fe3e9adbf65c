package products

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"kirana/db"
	"kirana/models"
	"kirana/mq"
	"kirana/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productPicDir = "./static/productpic"

// UploadProductImage accepts a multipart "image" upload, stores the
// original plus a 300px-wide thumbnail, and patches the product's image
// URLs.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product ID", utils.KindBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form: "+err.Error(), utils.KindBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Image file is required", utils.KindBadRequest)
		return
	}
	defer file.Close()

	switch header.Header.Get("Content-Type") {
	case "image/jpeg", "image/png", "image/webp":
	default:
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Only JPG, PNG and WEBP are allowed", utils.KindBadRequest)
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unreadable image data", utils.KindBadRequest)
		return
	}

	if err := os.MkdirAll(productPicDir, 0755); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image", utils.KindStoreFailure)
		return
	}

	name := utils.GetUUID()
	originalPath := filepath.Join(productPicDir, fmt.Sprintf("%s.jpg", name))
	thumbPath := filepath.Join(productPicDir, fmt.Sprintf("%s_thumb.jpg", name))

	if err := imaging.Save(img, originalPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store image", utils.KindStoreFailure)
		return
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store thumbnail", utils.KindStoreFailure)
		return
	}

	patch := bson.M{
		"imageUrl":     "/static/productpic/" + filepath.Base(originalPath),
		"thumbnailUrl": "/static/productpic/" + filepath.Base(thumbPath),
		"updatedAt":    time.Now(),
	}
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
		"message": "Product image updated",
		"product": updated,
	})
}
