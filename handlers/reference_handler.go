package handlers

import (
	"net/http"

	"freightdesk/engine/refdata"
)

// ReferenceHandler serves the cached master lists the booking form is built
// from.
type ReferenceHandler struct {
	Ref *refdata.Cache
}

func (h *ReferenceHandler) Branches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.BranchList()})
}

func (h *ReferenceHandler) ArticleShapes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.ShapeList()})
}

func (h *ReferenceHandler) GoodsTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.GoodsTypeList()})
}

func (h *ReferenceHandler) BillTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.BillTypeList()})
}

func (h *ReferenceHandler) PaymentTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.PaymentTypeList()})
}

func (h *ReferenceHandler) RateTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: h.Ref.RateTypeList()})
}
