package repository

import "freightdesk/models"

// ReferenceRepository serves the master lists the booking form is built from.
type ReferenceRepository interface {
	Branches() ([]models.Branch, error)
	ArticleShapes() ([]models.ArticleShape, error)
	GoodsTypes() ([]models.GoodsType, error)
	BillTypes() ([]models.BillType, error)
	PaymentTypes() ([]models.PaymentType, error)
	RateTypes() ([]models.RateType, error)
}
