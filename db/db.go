package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection    *mongo.Collection
	SellerCollection  *mongo.Collection
	ProductCollection *mongo.Collection
	OrderCollection   *mongo.Collection
	BlogCollection    *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ClientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "vypardb"
	}

	UserCollection = Client.Database(dbName).Collection("users")
	SellerCollection = Client.Database(dbName).Collection("sellers")
	ProductCollection = Client.Database(dbName).Collection("products")
	OrderCollection = Client.Database(dbName).Collection("orders")
	BlogCollection = Client.Database(dbName).Collection("blogs")
}

// EnsureIndexes creates the indexes the handlers rely on. One seller profile
// per user is enforced here rather than by convention.
func EnsureIndexes(ctx context.Context) error {
	_, err := SellerCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"userid": 1},
		Options: options.Index().SetUnique(true).SetName("unique_seller_user"),
	})
	if err != nil {
		return err
	}

	idxs := []mongo.IndexModel{
		{Keys: bson.M{"productid": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"slug": 1}},
		{Keys: bson.M{"sellerid": 1}},
	}
	if _, err = ProductCollection.Indexes().CreateMany(ctx, idxs); err != nil {
		return err
	}

	_, err = OrderCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"orderid": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = BlogCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"slug": 1},
	})
	return err
}
