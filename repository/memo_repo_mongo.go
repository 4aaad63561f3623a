package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/models"
)

type MongoMemoRepo struct {
	DB *mongo.Client
}

func NewMongoMemoRepo(db *mongo.Client) *MongoMemoRepo {
	return &MongoMemoRepo{DB: db}
}

func (r *MongoMemoRepo) CreateLoadingMemo(m *models.LoadingMemo) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	id, err := nextID(ctx, db, "loading_memo")
	if err != nil {
		return err
	}
	m.MemoID = id

	_, err = db.Collection("loading_memo").InsertOne(ctx, m)
	return err
}

func (r *MongoMemoRepo) ListLoadingMemos() ([]models.LoadingMemo, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	cur, err := db.Collection("loading_memo").Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "memo_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LoadingMemo
	for cur.Next(ctx) {
		var m models.LoadingMemo
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MongoMemoRepo) CreateCashMemo(m *models.CashMemo) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	id, err := nextID(ctx, db, "cash_memo")
	if err != nil {
		return err
	}
	m.MemoID = id

	_, err = db.Collection("cash_memo").InsertOne(ctx, m)
	return err
}

func (r *MongoMemoRepo) ListCashMemos(bookingID int64) ([]models.CashMemo, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	cur, err := db.Collection("cash_memo").Find(ctx, bson.M{"booking_id": bookingID},
		options.Find().SetSort(bson.D{{Key: "memo_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.CashMemo
	for cur.Next(ctx) {
		var m models.CashMemo
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
