package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/models"
)

type MongoReferenceRepo struct {
	DB *mongo.Client
}

func NewMongoReferenceRepo(db *mongo.Client) *MongoReferenceRepo {
	return &MongoReferenceRepo{DB: db}
}

func findAll[T any](client *mongo.Client, collection, sortKey string) ([]T, error) {
	ctx := context.Background()
	db := client.Database(databaseName)

	cur, err := db.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: sortKey, Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

func (r *MongoReferenceRepo) Branches() ([]models.Branch, error) {
	return findAll[models.Branch](r.DB, "branch", "name")
}

func (r *MongoReferenceRepo) ArticleShapes() ([]models.ArticleShape, error) {
	return findAll[models.ArticleShape](r.DB, "article_shape", "shape_id")
}

func (r *MongoReferenceRepo) GoodsTypes() ([]models.GoodsType, error) {
	return findAll[models.GoodsType](r.DB, "goods_type", "goods_type_id")
}

func (r *MongoReferenceRepo) BillTypes() ([]models.BillType, error) {
	return findAll[models.BillType](r.DB, "bill_type", "bill_type_id")
}

func (r *MongoReferenceRepo) PaymentTypes() ([]models.PaymentType, error) {
	return findAll[models.PaymentType](r.DB, "payment_type", "payment_type_id")
}

func (r *MongoReferenceRepo) RateTypes() ([]models.RateType, error) {
	out, err := findAll[models.RateType](r.DB, "rate_type", "rate_type_id")
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = append(out, models.DefaultRateTypes...)
	}
	return out, nil
}
