package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freightdesk/models"
)

type PostgresBookingRepo struct {
	DB *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{DB: db}
}

// ------------------------ Helper Functions ------------------------

func (r *PostgresBookingRepo) insertDetail(tx *sql.Tx, bookingID int64, d *models.BookingDetail) error {
	return tx.QueryRow(`
		INSERT INTO booking_detail(
			booking_id,shape_id,shape_name,article,weight,charge_weight,
			rate_type_id,rate,freight,labour_rate_type_id,labour_rate,total_labour
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING booking_detail_id
	`, bookingID, d.ShapeID, d.ShapeName, nullInt(d.Article), nullDec(d.Weight), nullDec(d.ChargeWeight),
		d.RateTypeID, nullDec(d.Rate), d.Freight, d.LabourRateTypeID, nullDec(d.LabourRate), d.TotalLabour,
	).Scan(&d.BookingDetailID)
}

func (r *PostgresBookingRepo) updateDetail(tx *sql.Tx, d *models.BookingDetail) error {
	_, err := tx.Exec(`
		UPDATE booking_detail
		SET shape_id=$1, shape_name=$2, article=$3, weight=$4, charge_weight=$5,
			rate_type_id=$6, rate=$7, freight=$8, labour_rate_type_id=$9,
			labour_rate=$10, total_labour=$11
		WHERE booking_detail_id=$12
	`, d.ShapeID, d.ShapeName, nullInt(d.Article), nullDec(d.Weight), nullDec(d.ChargeWeight),
		d.RateTypeID, nullDec(d.Rate), d.Freight, d.LabourRateTypeID, nullDec(d.LabourRate), d.TotalLabour,
		d.BookingDetailID)
	return err
}

const bookingColumns = `
	booking_id, lr_number, booking_date, from_branch_id, to_branch_id, bill_type_id,
	consignor_id, consignor_name, consignor_gst, consignor_phone,
	consignee_id, consignee_name, consignee_gst, consignee_phone,
	quotation_by, payment_type_id, goods_type_id, invoice_number, declared_value,
	eway_bill_number, mode, private_mark, goods_received_by, note,
	freight, lr_charge, labour, aoc, collection, door_delivery, oloc, insurance,
	other, carrier_risk, bh_charge, fov, cartage, sgst, cgst, igst,
	total, grand_total, status, created_by, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	b := &models.Booking{}
	var goodsTypeID sql.NullInt64
	var updatedAt sql.NullTime
	err := row.Scan(
		&b.BookingID, &b.LRNumber, &b.BookingDate, &b.FromBranchID, &b.ToBranchID, &b.BillTypeID,
		&b.ConsignorID, &b.ConsignorName, &b.ConsignorGST, &b.ConsignorPhone,
		&b.ConsigneeID, &b.ConsigneeName, &b.ConsigneeGST, &b.ConsigneePhone,
		&b.QuotationBy, &b.PaymentTypeID, &goodsTypeID, &b.InvoiceNumber, &b.DeclaredValue,
		&b.EwayBillNumber, &b.Mode, &b.PrivateMark, &b.GoodsReceivedBy, &b.Note,
		&b.Freight, &b.LRCharge, &b.Labour, &b.AOC, &b.Collection, &b.DoorDelivery, &b.OLOC, &b.Insurance,
		&b.Other, &b.CarrierRisk, &b.BHCharge, &b.FOV, &b.Cartage, &b.SGST, &b.CGST, &b.IGST,
		&b.Total, &b.GrandTotal, &b.Status, &b.CreatedBy, &b.CreatedAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if goodsTypeID.Valid {
		b.GoodsTypeID = &goodsTypeID.Int64
	}
	if updatedAt.Valid {
		b.UpdatedAt = &updatedAt.Time
	}
	return b, nil
}

// ------------------------ Create / Update ------------------------

func (r *PostgresBookingRepo) CreateBooking(b *models.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = b.CreatedAt
	}
	if b.Status == 0 {
		b.Status = models.BookingStatusDraft
	}

	err = tx.QueryRow(`
		INSERT INTO booking(
			lr_number, booking_date, from_branch_id, to_branch_id, bill_type_id,
			consignor_id, consignor_name, consignor_gst, consignor_phone,
			consignee_id, consignee_name, consignee_gst, consignee_phone,
			quotation_by, payment_type_id, goods_type_id, invoice_number, declared_value,
			eway_bill_number, mode, private_mark, goods_received_by, note,
			freight, lr_charge, labour, aoc, collection, door_delivery, oloc, insurance,
			other, carrier_risk, bh_charge, fov, cartage, sgst, cgst, igst,
			total, grand_total, status, created_by, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38,$39,
			$40,$41,$42,$43,$44)
		RETURNING booking_id
	`,
		b.LRNumber, b.BookingDate, b.FromBranchID, b.ToBranchID, b.BillTypeID,
		b.ConsignorID, b.ConsignorName, b.ConsignorGST, b.ConsignorPhone,
		b.ConsigneeID, b.ConsigneeName, b.ConsigneeGST, b.ConsigneePhone,
		b.QuotationBy, b.PaymentTypeID, nullInt(b.GoodsTypeID), b.InvoiceNumber, b.DeclaredValue,
		b.EwayBillNumber, b.Mode, b.PrivateMark, b.GoodsReceivedBy, b.Note,
		b.Freight, b.LRCharge, b.Labour, b.AOC, b.Collection, b.DoorDelivery, b.OLOC, b.Insurance,
		b.Other, b.CarrierRisk, b.BHCharge, b.FOV, b.Cartage, b.SGST, b.CGST, b.IGST,
		b.Total, b.GrandTotal, b.Status, b.CreatedBy, b.CreatedAt,
	).Scan(&b.BookingID)
	if err != nil {
		return err
	}

	for i := range b.Details {
		b.Details[i].BookingID = b.BookingID
		if err := r.insertDetail(tx, b.BookingID, &b.Details[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// UpdateBooking rewrites the header and applies the row diff: rows tagged A
// are inserted, U updated in place, D removed.
func (r *PostgresBookingRepo) UpdateBooking(b *models.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if b.UpdatedAt == nil {
		b.UpdatedAt = &now
	}

	_, err = tx.Exec(`
		UPDATE booking SET
			from_branch_id=$1, to_branch_id=$2, bill_type_id=$3,
			consignor_id=$4, consignor_name=$5, consignor_gst=$6, consignor_phone=$7,
			consignee_id=$8, consignee_name=$9, consignee_gst=$10, consignee_phone=$11,
			quotation_by=$12, payment_type_id=$13, goods_type_id=$14, invoice_number=$15,
			declared_value=$16, eway_bill_number=$17, mode=$18, private_mark=$19,
			goods_received_by=$20, note=$21,
			freight=$22, lr_charge=$23, labour=$24, aoc=$25, collection=$26,
			door_delivery=$27, oloc=$28, insurance=$29, other=$30, carrier_risk=$31,
			bh_charge=$32, fov=$33, cartage=$34, sgst=$35, cgst=$36, igst=$37,
			total=$38, grand_total=$39, status=$40, updated_at=$41
		WHERE booking_id=$42
	`,
		b.FromBranchID, b.ToBranchID, b.BillTypeID,
		b.ConsignorID, b.ConsignorName, b.ConsignorGST, b.ConsignorPhone,
		b.ConsigneeID, b.ConsigneeName, b.ConsigneeGST, b.ConsigneePhone,
		b.QuotationBy, b.PaymentTypeID, nullInt(b.GoodsTypeID), b.InvoiceNumber,
		b.DeclaredValue, b.EwayBillNumber, b.Mode, b.PrivateMark,
		b.GoodsReceivedBy, b.Note,
		b.Freight, b.LRCharge, b.Labour, b.AOC, b.Collection,
		b.DoorDelivery, b.OLOC, b.Insurance, b.Other, b.CarrierRisk,
		b.BHCharge, b.FOV, b.Cartage, b.SGST, b.CGST, b.IGST,
		b.Total, b.GrandTotal, b.Status, b.UpdatedAt, b.BookingID,
	)
	if err != nil {
		return err
	}

	for i := range b.Details {
		d := &b.Details[i]
		switch d.Flag {
		case models.RowAdded:
			d.BookingID = b.BookingID
			if err := r.insertDetail(tx, b.BookingID, d); err != nil {
				return err
			}
		case models.RowUpdated:
			if err := r.updateDetail(tx, d); err != nil {
				return err
			}
		case models.RowDeleted:
			if _, err := tx.Exec(`DELETE FROM booking_detail WHERE booking_detail_id=$1`, d.BookingDetailID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// ------------------------ Read / Delete ------------------------

func (r *PostgresBookingRepo) GetBooking(bookingID int64) (*models.Booking, error) {
	row := r.DB.QueryRow(`SELECT`+bookingColumns+` FROM booking WHERE booking_id=$1`, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadDetails(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresBookingRepo) ListBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	query := `SELECT` + bookingColumns + ` FROM booking`
	var conds []string
	var args []interface{}

	for _, key := range []string{"booking_id", "lr_number", "from_branch_id", "to_branch_id", "bill_type_id", "consignor_id", "consignee_id", "status"} {
		if v, ok := filters[key]; ok {
			args = append(args, v)
			conds = append(conds, fmt.Sprintf("%s=$%d", key, len(args)))
		}
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY booking_id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		if err := r.loadDetails(b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresBookingRepo) loadDetails(b *models.Booking) error {
	rows, err := r.DB.Query(`
		SELECT booking_detail_id, booking_id, shape_id, shape_name, article, weight,
			charge_weight, rate_type_id, rate, freight, labour_rate_type_id,
			labour_rate, total_labour
		FROM booking_detail
		WHERE booking_id=$1
		ORDER BY booking_detail_id
	`, b.BookingID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.BookingDetail
		var article sql.NullInt64
		var weight, chargeWeight, rate, labourRate decimal.NullDecimal
		if err := rows.Scan(
			&d.BookingDetailID, &d.BookingID, &d.ShapeID, &d.ShapeName, &article, &weight,
			&chargeWeight, &d.RateTypeID, &rate, &d.Freight, &d.LabourRateTypeID,
			&labourRate, &d.TotalLabour,
		); err != nil {
			return err
		}
		if article.Valid {
			d.Article = &article.Int64
		}
		d.Weight = fromNullDec(weight)
		d.ChargeWeight = fromNullDec(chargeWeight)
		d.Rate = fromNullDec(rate)
		d.LabourRate = fromNullDec(labourRate)
		b.Details = append(b.Details, d)
	}
	return rows.Err()
}

func (r *PostgresBookingRepo) DeleteBooking(bookingID int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM booking_detail WHERE booking_id=$1`, bookingID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM booking WHERE booking_id=$1`, bookingID); err != nil {
		return err
	}
	return tx.Commit()
}

// NextLRNumber advances the per (bill type, branch pair) sequence and
// formats the waybill number.
func (r *PostgresBookingRepo) NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error) {
	var n int64
	err := r.DB.QueryRow(`
		INSERT INTO lr_sequence(bill_type_id, from_branch_id, to_branch_id, next_no)
		VALUES($1,$2,$3,1)
		ON CONFLICT (bill_type_id, from_branch_id, to_branch_id)
		DO UPDATE SET next_no = lr_sequence.next_no + 1
		RETURNING next_no
	`, billTypeID, fromBranchID, toBranchID).Scan(&n)
	if err != nil {
		return "", err
	}
	return FormatLRNumber(billTypeID, fromBranchID, n), nil
}

// FormatLRNumber renders a sequence value as the printed waybill number.
func FormatLRNumber(billTypeID, fromBranchID, n int64) string {
	return fmt.Sprintf("%d-%d-%06d", billTypeID, fromBranchID, n)
}

// ------------------------ Null helpers ------------------------

func nullInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullDec(v *decimal.Decimal) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func fromNullDec(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}
