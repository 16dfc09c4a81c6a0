package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"ecocycle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "ecocycle"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "ecocycle"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "ecocycle"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return ensureIndexes(ctx)
}

// ensureIndexes creates the indexes the versioned player update and the
// leaderboard sort rely on. One player document per user id.
func ensureIndexes(ctx context.Context) error {
	players := MongoDatabase.Collection("players")
	_, err := players.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "totalPoints", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create player indexes: %w", err)
	}

	scans := MongoDatabase.Collection("scans")
	_, err = scans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create scan index: %w", err)
	}
	return nil
}

// FindRecentScans retrieves the latest scans for a user, newest first
func FindRecentScans(ctx context.Context, userID string, limit int) ([]models.ScanResult, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := GetCollection("scans").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scans []models.ScanResult
	if err := cursor.All(ctx, &scans); err != nil {
		return nil, err
	}
	return scans, nil
}

// FindPlayerByUserID fetches a single player document
func FindPlayerByUserID(ctx context.Context, userID string) (*models.Player, error) {
	var player models.Player
	err := GetCollection("players").FindOne(ctx, bson.M{"userId": userID}).Decode(&player)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}
