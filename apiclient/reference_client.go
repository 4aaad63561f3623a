package apiclient

import (
	"net/http"

	"freightdesk/models"
)

type ReferenceClient struct {
	*Client
}

func NewReferenceClient(c *Client) *ReferenceClient {
	return &ReferenceClient{Client: c}
}

func (c *ReferenceClient) Branches() ([]models.Branch, error) {
	var out []models.Branch
	err := c.call(http.MethodGet, "/branches", nil, &out)
	return out, err
}

func (c *ReferenceClient) ArticleShapes() ([]models.ArticleShape, error) {
	var out []models.ArticleShape
	err := c.call(http.MethodGet, "/article-shapes", nil, &out)
	return out, err
}

func (c *ReferenceClient) GoodsTypes() ([]models.GoodsType, error) {
	var out []models.GoodsType
	err := c.call(http.MethodGet, "/goods-types", nil, &out)
	return out, err
}

func (c *ReferenceClient) BillTypes() ([]models.BillType, error) {
	var out []models.BillType
	err := c.call(http.MethodGet, "/bill-types", nil, &out)
	return out, err
}

func (c *ReferenceClient) PaymentTypes() ([]models.PaymentType, error) {
	var out []models.PaymentType
	err := c.call(http.MethodGet, "/payment-types", nil, &out)
	return out, err
}

func (c *ReferenceClient) RateTypes() ([]models.RateType, error) {
	var out []models.RateType
	if err := c.call(http.MethodGet, "/rate-types", nil, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = append(out, models.DefaultRateTypes...)
	}
	return out, nil
}
