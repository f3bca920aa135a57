package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"driver_service/internal/config"
	"driver_service/internal/models"
	"driver_service/internal/storage"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	usersCollection        = "users"
	applicationsCollection = "applications"
)

type MongoRepo struct {
	client       *mongo.Client
	users        *mongo.Collection
	applications *mongo.Collection
}

func New(ctx context.Context, cfg *config.Config) (*MongoRepo, error) {
	const op = "storage.mongo.New"

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect: %w", op, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	db := client.Database(cfg.Mongo.Database)

	repo := &MongoRepo{
		client:       client,
		users:        db.Collection(usersCollection),
		applications: db.Collection(applicationsCollection),
	}

	// backstop for the pre-insert duplicate check in the auth service
	_, err = repo.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%s: failed to ensure email index: %w", op, err)
	}

	return repo, nil
}

func (r *MongoRepo) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	const op = "storage.mongo.SaveUser"

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, storage.ErrUserExists
		}

		return models.User{}, fmt.Errorf("%s: failed to save user: %w", op, err)
	}

	user.ID = res.InsertedID.(bson.ObjectID)

	return user, nil
}

func (r *MongoRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.mongo.UserByEmail"

	var u models.User

	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, storage.ErrUserNotFound
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (r *MongoRepo) SaveApplication(ctx context.Context, app models.Application) (models.Application, error) {
	const op = "storage.mongo.SaveApplication"

	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	res, err := r.applications.InsertOne(ctx, app)
	if err != nil {
		return models.Application{}, fmt.Errorf("%s: failed to save application: %w", op, err)
	}

	app.ID = res.InsertedID.(bson.ObjectID)

	return app, nil
}

func (r *MongoRepo) ApplicationByID(ctx context.Context, id string) (models.Application, error) {
	const op = "storage.mongo.ApplicationByID"

	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Application{}, storage.ErrApplicationNotFound
	}

	var app models.Application

	err = r.applications.FindOne(ctx, bson.M{"_id": oid}).Decode(&app)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Application{}, storage.ErrApplicationNotFound
		}

		return models.Application{}, fmt.Errorf("%s: %w", op, err)
	}

	return app, nil
}

// Applications returns one page of records in natural insertion order.
func (r *MongoRepo) Applications(ctx context.Context, skip, limit int64) ([]models.Application, error) {
	const op = "storage.mongo.Applications"

	cursor, err := r.applications.Find(ctx, bson.D{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	apps := []models.Application{}
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return apps, nil
}

func (r *MongoRepo) CountApplications(ctx context.Context) (int64, error) {
	const op = "storage.mongo.CountApplications"

	total, err := r.applications.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return total, nil
}

func (r *MongoRepo) UpdateApplication(ctx context.Context, app models.Application) (models.Application, error) {
	const op = "storage.mongo.UpdateApplication"

	app.UpdatedAt = time.Now().UTC()

	res, err := r.applications.UpdateByID(ctx, app.ID, bson.M{"$set": bson.M{
		"archived":  app.Archived,
		"updatedAt": app.UpdatedAt,
	}})
	if err != nil {
		return models.Application{}, fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return models.Application{}, storage.ErrApplicationNotFound
	}

	return app, nil
}

// DropCollections removes the users and applications collections. Used by
// the fixtures command only.
func (r *MongoRepo) DropCollections(ctx context.Context) error {
	const op = "storage.mongo.DropCollections"

	if err := r.users.Drop(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.applications.Drop(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *MongoRepo) Close(ctx context.Context) {
	_ = r.client.Disconnect(ctx)
}
