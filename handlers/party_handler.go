package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"freightdesk/engine/refdata"
	"freightdesk/models"
	"freightdesk/repository"
)

type PartyHandler struct {
	Repo repository.PartyRepository
	Ref  *refdata.Cache
}

func (h *PartyHandler) Consignors(w http.ResponseWriter, r *http.Request) {
	list := h.Ref.ConsignorList()
	if list == nil {
		list = []models.Party{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

func (h *PartyHandler) Consignees(w http.ResponseWriter, r *http.Request) {
	list := h.Ref.ConsigneeList()
	if list == nil {
		list = []models.Party{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// CreateParty is the quick-add used mid-booking. The stored defaults
// (payment type, bilty charge) are what the resolver force-applies later
// when a quotation for this party matches.
func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var p models.Party
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if p.Name == "" || p.Phone == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Name and phone are required",
		})
		return
	}
	if !p.IsConsignor && !p.IsConsignee {
		p.IsConsignor = true
		p.IsConsignee = true
	}
	p.Active = true

	if err := h.Repo.CreateParty(&p); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create party: " + err.Error(),
		})
		return
	}

	if err := h.Ref.Reload(); err != nil {
		log.Printf("reference reload after party create: %v", err)
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Party created successfully",
		Data:    p,
	})
}
