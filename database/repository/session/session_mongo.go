package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookie/database"
	"bookie/models"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo creates a new instance of SessionRepository using MongoDB.
func NewMongoSessionRepo() SessionRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("sessions")
	repo := &MongoSessionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSessionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert replaces the session keyed by username, creating it if absent.
func (r *MongoSessionRepo) Upsert(session *models.Session) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"username": session.Username}, session, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert session for %s: %w", session.Username, err)
	}
	return nil
}

// DeleteByUsername removes all sessions for the given username.
func (r *MongoSessionRepo) DeleteByUsername(username string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"username": username}); err != nil {
		return fmt.Errorf("failed to delete sessions for %s: %w", username, err)
	}
	return nil
}

// GetByUsername retrieves the session for the given username, or nil if absent.
func (r *MongoSessionRepo) GetByUsername(username string) (*models.Session, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session for %s: %w", username, err)
	}
	return &session, nil
}

// sessionUser is the decoded shape of the session-to-user join.
type sessionUser struct {
	Username string        `bson:"username"`
	Token    string        `bson:"token"`
	Users    []models.User `bson:"user"`
}

// GetUserByToken resolves a token to its owning user by joining the session
// to the users collection on username == email in one aggregation. The three
// failure shapes stay distinct: no session document, an empty join result,
// and a joined user missing required fields.
func (r *MongoSessionRepo) GetUserByToken(token string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"token": token}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "username",
			"foreignField": "email",
			"as":           "user",
		}}},
		{{Key: "$project", Value: bson.M{"_id": false, "user._id": false}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	defer cursor.Close(ctx)

	var results []sessionUser
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode session join: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrSessionNotFound
	}
	if len(results[0].Users) == 0 {
		return nil, ErrUserNotFound
	}
	user := results[0].Users[0]
	if !user.Valid() {
		return nil, ErrUserNotFound
	}
	return &user, nil
}
