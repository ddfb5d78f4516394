package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vip25/site/config"
	"github.com/vip25/site/model"
)

const (
	clientFormsCollection = "client_forms"
	careerFormsCollection = "career_forms"
)

type mongoStore struct {
	db *mongo.Database
}

// Connect makes a single bounded attempt to reach the database. There
// is no retry loop: a failed attempt leaves the caller with no store,
// and main falls back to Unavailable().
func Connect(ctx context.Context, cfg config.Config) (Store, error) {
	client, err := mongo.Connect(
		options.Client().
			ApplyURI(cfg.MongoURI).
			SetConnectTimeout(cfg.MongoConnectTimeout).
			SetServerSelectionTimeout(cfg.MongoConnectTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	return &mongoStore{db: client.Database(cfg.MongoDB)}, nil
}

func (s *mongoStore) Available() bool { return true }

func (s *mongoStore) InsertInquiry(ctx context.Context, inq model.ClientInquiry) error {
	_, err := s.db.Collection(clientFormsCollection).InsertOne(ctx, inq)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

func (s *mongoStore) InsertApplication(ctx context.Context, app model.CareerApplication) error {
	_, err := s.db.Collection(careerFormsCollection).InsertOne(ctx, app)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

func (s *mongoStore) ListInquiries(ctx context.Context) ([]model.ClientInquiry, error) {
	cursor, err := s.db.Collection(clientFormsCollection).
		Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	var inquiries []model.ClientInquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return inquiries, nil
}

func (s *mongoStore) ListApplications(ctx context.Context) ([]model.CareerApplication, error) {
	cursor, err := s.db.Collection(careerFormsCollection).
		Find(ctx, bson.D{}, newestFirst())
	if err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}

	var applications []model.CareerApplication
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, errors.Join(ErrUnavailable, err)
	}
	return applications, nil
}

func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
}
