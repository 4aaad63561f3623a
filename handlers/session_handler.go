package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"freightdesk/apiclient"
	"freightdesk/engine/quote"
	"freightdesk/engine/refdata"
	"freightdesk/engine/session"
	"freightdesk/models"
	"freightdesk/repository"
)

// SessionHandler exposes the booking editing sessions. Every mutation
// endpoint answers with the recomputed form view so the caller never has to
// rerun the pricing pipeline client-side.
type SessionHandler struct {
	Manager  *session.Manager
	Bookings repository.BookingRepository
	Parties  repository.PartyRepository
	Ref      *refdata.Cache
}

// Create opens a session for a fresh draft, or for editing when bookingId is
// given.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookingID int64           `json:"bookingId"`
		User      *models.AppUser `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	var existing *models.Booking
	if req.BookingID > 0 {
		b, err := h.Bookings.GetBooking(req.BookingID)
		if err != nil {
			h.writeError(w, err)
			return
		}
		if b == nil {
			writeJSON(w, http.StatusNotFound, ApiResponse{
				Success: false,
				Message: "Booking not found",
			})
			return
		}
		existing = b
	}

	sess := h.Manager.Open(req.User, existing)
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Session created",
		Data: map[string]interface{}{
			"sessionId": sess.ID,
			"view":      sess.View(),
		},
	})
}

func (h *SessionHandler) lookup(w http.ResponseWriter, id string) *session.Session {
	sid, err := uuid.Parse(id)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid session id",
		})
		return nil
	}
	sess, err := h.Manager.Get(sid)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Session not found or expired",
		})
		return nil
	}
	return sess
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: sess.View()})
}

func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request, id string) {
	sid, err := uuid.Parse(id)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid session id",
		})
		return
	}
	h.Manager.Close(sid)
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Session closed"})
}

// PutSelection changes consignor/consignee/branches/bill type, which
// re-fetches the quotation slot and reruns precedence resolution.
func (h *SessionHandler) PutSelection(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}

	var req struct {
		ConsignorID  int64 `json:"consignorId"`
		ConsigneeID  int64 `json:"consigneeId"`
		FromBranchID int64 `json:"fromBranchId"`
		ToBranchID   int64 `json:"toBranchId"`
		BillTypeID   int64 `json:"billTypeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	sel := session.Selection{
		FromBranch: req.FromBranchID,
		ToBranch:   req.ToBranchID,
		BillType:   req.BillTypeID,
	}
	if req.ConsignorID > 0 {
		sel.Consignor = h.party(req.ConsignorID, true)
	}
	if req.ConsigneeID > 0 {
		sel.Consignee = h.party(req.ConsigneeID, false)
	}

	if err := sess.SetSelection(sel); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: sess.View()})
}

// party resolves a party id through the reference cache, falling back to the
// repository for rows added after the last reload.
func (h *SessionHandler) party(id int64, consignor bool) *models.Party {
	if h.Ref != nil {
		if consignor {
			if p, ok := h.Ref.Consignor(id); ok {
				return &p
			}
		} else {
			if p, ok := h.Ref.Consignee(id); ok {
				return &p
			}
		}
	}
	if h.Parties != nil {
		if p, err := h.Parties.GetParty(id); err == nil && p != nil {
			return p
		}
	}
	return nil
}

func (h *SessionHandler) PatchHeader(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}

	var patch struct {
		session.HeaderPatch
		QuotationBy *string `json:"quotationBy,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if patch.QuotationBy != nil {
		sess.SetQuotationBy(quote.Direction(*patch.QuotationBy))
	}
	if err := sess.PatchHeader(patch.HeaderPatch); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: sess.View()})
}

// PostRow fills the row entry and commits it to the article table.
func (h *SessionHandler) PostRow(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}
	h.applyRow(w, r, sess)
}

// PutRow reopens an existing row for editing, applies the patch, and commits
// the replacement.
func (h *SessionHandler) PutRow(w http.ResponseWriter, r *http.Request, id, idx string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid row index",
		})
		return
	}
	if err := sess.EditRow(index); err != nil {
		h.writeError(w, err)
		return
	}
	h.applyRow(w, r, sess)
}

func (h *SessionHandler) applyRow(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var patch session.RowPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if err := sess.PatchRow(patch); err != nil {
		h.writeError(w, err)
		return
	}
	if fieldErrs := sess.AddRow(); len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
			Success: false,
			Message: "Row validation failed",
			Data:    fieldErrs,
		})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: sess.View()})
}

func (h *SessionHandler) DeleteRow(w http.ResponseWriter, r *http.Request, id, idx string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}
	index, err := strconv.Atoi(idx)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid row index",
		})
		return
	}
	if err := sess.DeleteRow(index); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: sess.View()})
}

// Submit validates the form, diffs the rows against the loaded originals,
// and persists through the booking repository.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request, id string) {
	sess := h.lookup(w, id)
	if sess == nil {
		return
	}

	booking, fieldErrs, err := sess.Submit(h.Bookings)
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
			Success: false,
			Message: "Validation failed: " + fieldErrs[0].Field,
			Data:    fieldErrs,
		})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Booking saved",
		Data:    booking,
	})
}

func (h *SessionHandler) writeError(w http.ResponseWriter, err error) {
	var mono *session.MonotonicityError
	switch {
	case errors.As(err, &mono):
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: mono.Error(),
			Data:    map[string]interface{}{"field": mono.Field, "floor": mono.Floor},
		})
	case errors.Is(err, session.ErrFieldLocked), errors.Is(err, session.ErrRowLocked):
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, session.ErrUnknownField),
		errors.Is(err, session.ErrNoSuchRow),
		errors.Is(err, session.ErrNotEditing):
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, apiclient.ErrAuthExpired):
		writeJSON(w, http.StatusUnauthorized, ApiResponse{
			Success: false,
			Message: "Upstream authentication expired",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
	}
}
