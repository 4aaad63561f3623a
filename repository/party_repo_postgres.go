package repository

import (
	"database/sql"
	"time"

	"freightdesk/models"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

const partyColumns = `
	party_id, name, gst_number, phone, branch_id, payment_type_id, bilty_charge,
	is_consignor, is_consignee, active, company_id, created_at`

func scanParty(row interface{ Scan(...interface{}) error }) (*models.Party, error) {
	p := &models.Party{}
	var gst sql.NullString
	var payType sql.NullInt64
	err := row.Scan(
		&p.PartyID, &p.Name, &gst, &p.Phone, &p.BranchID, &payType, &p.BiltyCharge,
		&p.IsConsignor, &p.IsConsignee, &p.Active, &p.CompanyID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gst.Valid {
		p.GSTNumber = &gst.String
	}
	if payType.Valid {
		p.PaymentTypeID = &payType.Int64
	}
	return p, nil
}

func (r *PostgresPartyRepo) CreateParty(p *models.Party) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO party(name, gst_number, phone, branch_id, payment_type_id,
			bilty_charge, is_consignor, is_consignee, active, company_id, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING party_id
	`, p.Name, p.GSTNumber, p.Phone, p.BranchID, nullInt(p.PaymentTypeID),
		p.BiltyCharge, p.IsConsignor, p.IsConsignee, p.Active, p.CompanyID, p.CreatedAt,
	).Scan(&p.PartyID)
}

func (r *PostgresPartyRepo) GetParty(partyID int64) (*models.Party, error) {
	row := r.DB.QueryRow(`SELECT`+partyColumns+` FROM party WHERE party_id=$1`, partyID)
	p, err := scanParty(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *PostgresPartyRepo) ActiveConsignors() ([]models.Party, error) {
	return r.listParties(`SELECT` + partyColumns + ` FROM party WHERE active AND is_consignor ORDER BY name`)
}

func (r *PostgresPartyRepo) ActiveConsignees() ([]models.Party, error) {
	return r.listParties(`SELECT` + partyColumns + ` FROM party WHERE active AND is_consignee ORDER BY name`)
}

func (r *PostgresPartyRepo) listParties(query string) ([]models.Party, error) {
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
