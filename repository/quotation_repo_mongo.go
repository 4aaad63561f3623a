package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/models"
)

type MongoQuotationRepo struct {
	DB *mongo.Client
}

func NewMongoQuotationRepo(db *mongo.Client) *MongoQuotationRepo {
	return &MongoQuotationRepo{DB: db}
}

func (r *MongoQuotationRepo) QuotationsByParty(partyID int64) ([]models.Quotation, error) {
	return r.query(bson.M{"scope": models.ScopeParty, "party_id": partyID})
}

func (r *MongoQuotationRepo) CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error) {
	return r.query(bson.M{
		"scope":          models.ScopeCompany,
		"from_branch_id": fromBranchID,
		"to_branch_id":   toBranchID,
	})
}

func (r *MongoQuotationRepo) query(filter bson.M) ([]models.Quotation, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	cur, err := db.Collection("quotation").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "quotation_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Quotation
	for cur.Next(ctx) {
		var q models.Quotation
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, cur.Err()
}
