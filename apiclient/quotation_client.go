package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"freightdesk/models"
)

// QuotationClient normalizes the upstream quotation records, which expose
// overlapping field names depending on which legacy route produced them:
// rate vs billRate, toBranchId vs toId, quotationId vs id. Nothing past
// this file branches on field presence.
type QuotationClient struct {
	*Client
}

func NewQuotationClient(c *Client) *QuotationClient {
	return &QuotationClient{Client: c}
}

type rawQuotation struct {
	QuotationID      int64            `json:"quotationId"`
	ID               int64            `json:"id"`
	PartyID          *int64           `json:"partyId"`
	FromBranchID     int64            `json:"fromBranchId"`
	ToBranchID       *int64           `json:"toBranchId"`
	ToID             *int64           `json:"toId"`
	BillTypeID       int64            `json:"billTypeId"`
	ShapeID          *int64           `json:"shapeId"`
	GoodsTypeID      *int64           `json:"goodsTypeId"`
	Rate             *decimal.Decimal `json:"rate"`
	BillRate         *decimal.Decimal `json:"billRate"`
	RateTypeID       int64            `json:"rateTypeId"`
	HamaliRate       decimal.Decimal  `json:"hamaliRate"`
	HamaliRateTypeID int64            `json:"hamaliRateTypeId"`
	DoorDelivery     decimal.Decimal  `json:"doorDelivery"`
	Collection       decimal.Decimal  `json:"collection"`
}

func (r rawQuotation) normalize(scope models.QuotationScope) models.Quotation {
	q := models.Quotation{
		QuotationID:      r.QuotationID,
		Scope:            scope,
		PartyID:          r.PartyID,
		FromBranchID:     r.FromBranchID,
		BillTypeID:       r.BillTypeID,
		ShapeID:          r.ShapeID,
		GoodsTypeID:      r.GoodsTypeID,
		RateTypeID:       r.RateTypeID,
		HamaliRate:       r.HamaliRate,
		HamaliRateTypeID: r.HamaliRateTypeID,
		DoorDelivery:     r.DoorDelivery,
		Collection:       r.Collection,
	}
	if q.QuotationID == 0 {
		q.QuotationID = r.ID
	}
	if r.ToBranchID != nil {
		q.ToBranchID = *r.ToBranchID
	} else if r.ToID != nil {
		q.ToBranchID = *r.ToID
	}
	// billRate wins when a record carries both rate fields.
	switch {
	case r.BillRate != nil:
		q.Rate = *r.BillRate
	case r.Rate != nil:
		q.Rate = *r.Rate
	}
	return q
}

func (c *QuotationClient) QuotationsByParty(partyID int64) ([]models.Quotation, error) {
	var raw []rawQuotation
	if err := c.call(http.MethodGet, fmt.Sprintf("/quotations/party/%d", partyID), nil, &raw); err != nil {
		return nil, err
	}
	out := make([]models.Quotation, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize(models.ScopeParty))
	}
	return out, nil
}

// CompanyQuotationsByBranch tolerates the upstream returning either a list
// or a single object for this route.
func (c *QuotationClient) CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error) {
	var body json.RawMessage
	path := fmt.Sprintf("/quotations/company?fromBranchId=%d&toBranchId=%d", fromBranchID, toBranchID)
	if err := c.call(http.MethodGet, path, nil, &body); err != nil {
		return nil, err
	}
	if len(body) == 0 || string(body) == "null" {
		return nil, nil
	}

	var raw []rawQuotation
	if err := json.Unmarshal(body, &raw); err != nil {
		var one rawQuotation
		if err := json.Unmarshal(body, &one); err != nil {
			return nil, fmt.Errorf("decode company quotations: %w", err)
		}
		raw = []rawQuotation{one}
	}

	out := make([]models.Quotation, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.normalize(models.ScopeCompany))
	}
	return out, nil
}
