package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightdesk/models"
)

// MongoBookingRepo stores each booking as a single document with the line
// items embedded, so the row diff collapses to a rewrite of the details
// array.
type MongoBookingRepo struct {
	DB *mongo.Client
}

func NewMongoBookingRepo(db *mongo.Client) *MongoBookingRepo {
	return &MongoBookingRepo{DB: db}
}

func (r *MongoBookingRepo) CreateBooking(b *models.Booking) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = b.CreatedAt
	}
	if b.Status == 0 {
		b.Status = models.BookingStatusDraft
	}

	id, err := nextID(ctx, db, "booking")
	if err != nil {
		return err
	}
	b.BookingID = id
	for i := range b.Details {
		detailID, err := nextID(ctx, db, "booking_detail")
		if err != nil {
			return err
		}
		b.Details[i].BookingDetailID = detailID
		b.Details[i].BookingID = id
		b.Details[i].Flag = ""
	}

	_, err = db.Collection("booking").InsertOne(ctx, b)
	return err
}

// UpdateBooking applies the row diff in memory and replaces the stored
// details array wholesale.
func (r *MongoBookingRepo) UpdateBooking(b *models.Booking) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	now := time.Now().UTC()
	if b.UpdatedAt == nil {
		b.UpdatedAt = &now
	}

	kept := make([]models.BookingDetail, 0, len(b.Details))
	for i := range b.Details {
		d := &b.Details[i]
		if d.Flag == models.RowAdded {
			detailID, err := nextID(ctx, db, "booking_detail")
			if err != nil {
				return err
			}
			d.BookingDetailID = detailID
		}
		d.BookingID = b.BookingID
		if d.Flag == models.RowDeleted {
			continue
		}
		row := *d
		row.Flag = ""
		kept = append(kept, row)
	}

	update := *b
	update.Details = kept
	_, err := db.Collection("booking").ReplaceOne(ctx,
		bson.M{"booking_id": b.BookingID}, &update)
	return err
}

func (r *MongoBookingRepo) GetBooking(bookingID int64) (*models.Booking, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	var b models.Booking
	err := db.Collection("booking").FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MongoBookingRepo) ListBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	filter := bson.M{}
	for k, v := range filters {
		filter[k] = v
	}

	cur, err := db.Collection("booking").Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "booking_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Booking
	for cur.Next(ctx) {
		var b models.Booking
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, &b)
	}
	return out, cur.Err()
}

func (r *MongoBookingRepo) DeleteBooking(bookingID int64) error {
	ctx := context.Background()
	db := r.DB.Database(databaseName)
	_, err := db.Collection("booking").DeleteOne(ctx, bson.M{"booking_id": bookingID})
	return err
}

func (r *MongoBookingRepo) NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error) {
	ctx := context.Background()
	db := r.DB.Database(databaseName)

	var doc struct {
		NextNo int64 `bson:"next_no"`
	}
	err := db.Collection("lr_sequence").FindOneAndUpdate(ctx,
		bson.M{"bill_type_id": billTypeID, "from_branch_id": fromBranchID, "to_branch_id": toBranchID},
		bson.M{"$inc": bson.M{"next_no": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return "", err
	}
	return FormatLRNumber(billTypeID, fromBranchID, doc.NextNo), nil
}
