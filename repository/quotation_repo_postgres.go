package repository

import (
	"database/sql"

	"freightdesk/models"
)

// PostgresQuotationRepo stores party and company quotations in one table
// distinguished by scope, already in the canonical shape, so no field
// normalization is needed on the way out.
type PostgresQuotationRepo struct {
	DB *sql.DB
}

func NewPostgresQuotationRepo(db *sql.DB) *PostgresQuotationRepo {
	return &PostgresQuotationRepo{DB: db}
}

const quotationColumns = `
	quotation_id, scope, party_id, from_branch_id, to_branch_id, bill_type_id,
	shape_id, goods_type_id, rate, rate_type_id, hamali_rate, hamali_rate_type_id,
	door_delivery, collection`

func (r *PostgresQuotationRepo) QuotationsByParty(partyID int64) ([]models.Quotation, error) {
	return r.query(`SELECT`+quotationColumns+`
		FROM quotation WHERE scope='party' AND party_id=$1
		ORDER BY quotation_id`, partyID)
}

func (r *PostgresQuotationRepo) CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error) {
	return r.query(`SELECT`+quotationColumns+`
		FROM quotation WHERE scope='company' AND from_branch_id=$1 AND to_branch_id=$2
		ORDER BY quotation_id`, fromBranchID, toBranchID)
}

func (r *PostgresQuotationRepo) query(query string, args ...interface{}) ([]models.Quotation, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Quotation
	for rows.Next() {
		var q models.Quotation
		var partyID, shapeID, goodsTypeID sql.NullInt64
		if err := rows.Scan(
			&q.QuotationID, &q.Scope, &partyID, &q.FromBranchID, &q.ToBranchID, &q.BillTypeID,
			&shapeID, &goodsTypeID, &q.Rate, &q.RateTypeID, &q.HamaliRate, &q.HamaliRateTypeID,
			&q.DoorDelivery, &q.Collection,
		); err != nil {
			return nil, err
		}
		if partyID.Valid {
			q.PartyID = &partyID.Int64
		}
		if shapeID.Valid {
			q.ShapeID = &shapeID.Int64
		}
		if goodsTypeID.Valid {
			q.GoodsTypeID = &goodsTypeID.Int64
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
