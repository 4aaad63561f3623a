package repository

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"freightdesk/models"
)

type PostgresMemoRepo struct {
	DB *sql.DB
}

func NewPostgresMemoRepo(db *sql.DB) *PostgresMemoRepo {
	return &PostgresMemoRepo{DB: db}
}

func (r *PostgresMemoRepo) CreateLoadingMemo(m *models.LoadingMemo) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO loading_memo(memo_number, from_branch_id, to_branch_id,
			vehicle_number, driver_name, driver_phone, booking_ids,
			total_articles, total_weight, total_freight, created_by, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING memo_id
	`, m.MemoNumber, m.FromBranchID, m.ToBranchID,
		m.VehicleNumber, m.DriverName, m.DriverPhone, pq.Array(m.BookingIDs),
		m.TotalArticles, m.TotalWeight, m.TotalFreight, m.CreatedBy, m.CreatedAt,
	).Scan(&m.MemoID)
}

func (r *PostgresMemoRepo) ListLoadingMemos() ([]models.LoadingMemo, error) {
	rows, err := r.DB.Query(`
		SELECT memo_id, memo_number, from_branch_id, to_branch_id,
			vehicle_number, driver_name, driver_phone, booking_ids,
			total_articles, total_weight, total_freight, created_by, created_at
		FROM loading_memo ORDER BY memo_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.LoadingMemo
	for rows.Next() {
		var m models.LoadingMemo
		var ids pq.Int64Array
		if err := rows.Scan(&m.MemoID, &m.MemoNumber, &m.FromBranchID, &m.ToBranchID,
			&m.VehicleNumber, &m.DriverName, &m.DriverPhone, &ids,
			&m.TotalArticles, &m.TotalWeight, &m.TotalFreight, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.BookingIDs = []int64(ids)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresMemoRepo) CreateCashMemo(m *models.CashMemo) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO cash_memo(booking_id, lr_number, payer_name, amount,
			amount_words, remarks, created_by, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING memo_id
	`, m.BookingID, m.LRNumber, m.PayerName, m.Amount,
		m.AmountWords, m.Remarks, m.CreatedBy, m.CreatedAt,
	).Scan(&m.MemoID)
}

func (r *PostgresMemoRepo) ListCashMemos(bookingID int64) ([]models.CashMemo, error) {
	rows, err := r.DB.Query(`
		SELECT memo_id, booking_id, lr_number, payer_name, amount,
			amount_words, remarks, created_by, created_at
		FROM cash_memo WHERE booking_id=$1 ORDER BY memo_id DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CashMemo
	for rows.Next() {
		var m models.CashMemo
		if err := rows.Scan(&m.MemoID, &m.BookingID, &m.LRNumber, &m.PayerName, &m.Amount,
			&m.AmountWords, &m.Remarks, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
