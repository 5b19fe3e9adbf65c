package saveditems

import (
	"context"
	"errors"
	"fmt"

	"kirana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one collection per list kind, one document per user.
type MongoStore struct {
	colls map[string]*mongo.Collection
}

func NewMongoStore(carts, wishlists *mongo.Collection) *MongoStore {
	return &MongoStore{
		colls: map[string]*mongo.Collection{
			models.ListKindCart:     carts,
			models.ListKindWishlist: wishlists,
		},
	}
}

func (m *MongoStore) coll(kind string) (*mongo.Collection, error) {
	c, ok := m.colls[kind]
	if !ok {
		return nil, fmt.Errorf("unknown list kind %q", kind)
	}
	return c, nil
}

func (m *MongoStore) Load(ctx context.Context, kind, userID string) (*models.SavedList, error) {
	c, err := m.coll(kind)
	if err != nil {
		return nil, err
	}

	var list models.SavedList
	err = c.FindOne(ctx, bson.M{"userId": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (m *MongoStore) Save(ctx context.Context, list *models.SavedList) error {
	c, err := m.coll(list.Kind)
	if err != nil {
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err = c.ReplaceOne(ctx, bson.M{"userId": list.UserID}, list, opts)
	return err
}
