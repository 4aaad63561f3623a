package repository

import (
	"database/sql"

	"freightdesk/models"
)

type PostgresReferenceRepo struct {
	DB *sql.DB
}

func NewPostgresReferenceRepo(db *sql.DB) *PostgresReferenceRepo {
	return &PostgresReferenceRepo{DB: db}
}

func (r *PostgresReferenceRepo) Branches() ([]models.Branch, error) {
	rows, err := r.DB.Query(`
		SELECT branch_id, name, pincode, phone, transporter_name, transporter_phone,
			company_id, created_at
		FROM branch ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Branch
	for rows.Next() {
		var b models.Branch
		var tName, tPhone sql.NullString
		if err := rows.Scan(&b.BranchID, &b.Name, &b.Pincode, &b.Phone, &tName, &tPhone,
			&b.CompanyID, &b.CreatedAt); err != nil {
			return nil, err
		}
		if tName.Valid {
			b.TransporterName = &tName.String
		}
		if tPhone.Valid {
			b.TransporterPhone = &tPhone.String
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) ArticleShapes() ([]models.ArticleShape, error) {
	rows, err := r.DB.Query(`SELECT shape_id, name FROM article_shape ORDER BY shape_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ArticleShape
	for rows.Next() {
		var s models.ArticleShape
		if err := rows.Scan(&s.ShapeID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) GoodsTypes() ([]models.GoodsType, error) {
	rows, err := r.DB.Query(`SELECT goods_type_id, name FROM goods_type ORDER BY goods_type_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.GoodsType
	for rows.Next() {
		var g models.GoodsType
		if err := rows.Scan(&g.GoodsTypeID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) BillTypes() ([]models.BillType, error) {
	rows, err := r.DB.Query(`SELECT bill_type_id, name, is_gst FROM bill_type ORDER BY bill_type_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BillType
	for rows.Next() {
		var b models.BillType
		if err := rows.Scan(&b.BillTypeID, &b.Name, &b.IsGST); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) PaymentTypes() ([]models.PaymentType, error) {
	rows, err := r.DB.Query(`SELECT payment_type_id, name FROM payment_type ORDER BY payment_type_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PaymentType
	for rows.Next() {
		var p models.PaymentType
		if err := rows.Scan(&p.PaymentTypeID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresReferenceRepo) RateTypes() ([]models.RateType, error) {
	rows, err := r.DB.Query(`SELECT rate_type_id, name FROM rate_type ORDER BY rate_type_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RateType
	for rows.Next() {
		var t models.RateType
		if err := rows.Scan(&t.RateTypeID, &t.Name); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = append(out, models.DefaultRateTypes...)
	}
	return out, nil
}
