package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	CategoriesCollection *mongo.Collection
	ProductsCollection   *mongo.Collection
	UsersCollection      *mongo.Collection
	AddressesCollection  *mongo.Collection
	CartsCollection      *mongo.Collection
	WishlistsCollection  *mongo.Collection
	OrdersCollection     *mongo.Collection
)

// Init connects to MongoDB and binds the collection handles. Call once at
// startup; pair with Close at shutdown.
func Init(ctx context.Context) error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}
	Client = client

	database := client.Database("kirana")
	CategoriesCollection = database.Collection("categories")
	ProductsCollection = database.Collection("products")
	UsersCollection = database.Collection("users")
	AddressesCollection = database.Collection("addresses")
	CartsCollection = database.Collection("carts")
	WishlistsCollection = database.Collection("wishlists")
	OrdersCollection = database.Collection("orders")

	ensureIndexes(ctx)
	return nil
}

// ensureIndexes creates the lookup indexes the handlers rely on. Index
// creation failures are logged, not fatal: the queries still work, slowly.
func ensureIndexes(ctx context.Context) {
	ownerIdx := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}
	if _, err := AddressesCollection.Indexes().CreateOne(ctx, ownerIdx); err != nil {
		log.Printf("addresses index: %v", err)
	}

	listIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, coll := range []*mongo.Collection{CartsCollection, WishlistsCollection} {
		if _, err := coll.Indexes().CreateOne(ctx, listIdx); err != nil {
			log.Printf("%s index: %v", coll.Name(), err)
		}
	}
}

// Close disconnects the client. Safe to call when Init never ran.
func Close(ctx context.Context) {
	if Client == nil {
		return
	}
	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
