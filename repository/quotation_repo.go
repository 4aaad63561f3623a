package repository

import "freightdesk/models"

// QuotationRepository serves quotations already normalized to the canonical
// form (one rate field, branch ids, tiers tagged by scope).
type QuotationRepository interface {
	QuotationsByParty(partyID int64) ([]models.Quotation, error)
	CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error)
}
