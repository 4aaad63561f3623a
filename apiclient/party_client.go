package apiclient

import (
	"fmt"
	"net/http"

	"freightdesk/models"
)

type PartyClient struct {
	*Client
}

func NewPartyClient(c *Client) *PartyClient {
	return &PartyClient{Client: c}
}

func (c *PartyClient) CreateParty(p *models.Party) error {
	var created struct {
		PartyID int64 `json:"partyId"`
	}
	if err := c.call(http.MethodPost, "/parties", p, &created); err != nil {
		return err
	}
	p.PartyID = created.PartyID
	return nil
}

func (c *PartyClient) GetParty(partyID int64) (*models.Party, error) {
	var p models.Party
	if err := c.call(http.MethodGet, fmt.Sprintf("/parties/%d", partyID), nil, &p); err != nil {
		return nil, err
	}
	if p.PartyID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (c *PartyClient) ActiveConsignors() ([]models.Party, error) {
	var out []models.Party
	err := c.call(http.MethodGet, "/parties/consignors", nil, &out)
	return out, err
}

func (c *PartyClient) ActiveConsignees() ([]models.Party, error) {
	var out []models.Party
	err := c.call(http.MethodGet, "/parties/consignees", nil, &out)
	return out, err
}
