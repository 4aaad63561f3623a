package repository

import "freightdesk/models"

type PartyRepository interface {
	CreateParty(p *models.Party) error
	GetParty(partyID int64) (*models.Party, error)
	ActiveConsignors() ([]models.Party, error)
	ActiveConsignees() ([]models.Party, error)
}
