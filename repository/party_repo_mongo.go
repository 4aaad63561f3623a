package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/models"
)

type MongoPartyRepo struct {
	DB *mongo.Client
}

func NewMongoPartyRepo(db *mongo.Client) *MongoPartyRepo {
	return &MongoPartyRepo{DB: db}
}

func (r *MongoPartyRepo) CreateParty(p *models.Party) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	id, err := nextID(ctx, db, "party")
	if err != nil {
		return err
	}
	p.PartyID = id

	_, err = db.Collection("party").InsertOne(ctx, p)
	return err
}

func (r *MongoPartyRepo) GetParty(partyID int64) (*models.Party, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	var p models.Party
	err := db.Collection("party").FindOne(ctx, bson.M{"party_id": partyID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MongoPartyRepo) ActiveConsignors() ([]models.Party, error) {
	return r.list(bson.M{"active": true, "is_consignor": true})
}

func (r *MongoPartyRepo) ActiveConsignees() ([]models.Party, error) {
	return r.list(bson.M{"active": true, "is_consignee": true})
}

func (r *MongoPartyRepo) list(filter bson.M) ([]models.Party, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	cur, err := db.Collection("party").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Party
	for cur.Next(ctx) {
		var p models.Party
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}
