package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"freightdesk/models"
	"freightdesk/repository"
	"freightdesk/utils"
)

type MemoHandler struct {
	Repo     repository.MemoRepository
	Bookings repository.BookingRepository
}

// CreateLoadingMemo groups finalized bookings onto a vehicle. Totals are
// derived from the referenced bookings, not trusted from the request.
func (h *MemoHandler) CreateLoadingMemo(w http.ResponseWriter, r *http.Request) {
	var memo models.LoadingMemo
	if err := json.NewDecoder(r.Body).Decode(&memo); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if memo.VehicleNumber == "" || len(memo.BookingIDs) == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Vehicle number and at least one booking are required",
		})
		return
	}

	memo.TotalArticles = 0
	memo.TotalWeight = decimal.Zero
	memo.TotalFreight = decimal.Zero
	for _, id := range memo.BookingIDs {
		b, err := h.Bookings.GetBooking(id)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ApiResponse{
				Success: false,
				Message: "Failed to load booking: " + err.Error(),
			})
			return
		}
		if b == nil {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: fmt.Sprintf("Booking %d not found", id),
			})
			return
		}
		for _, d := range b.Details {
			if d.Article != nil {
				memo.TotalArticles += *d.Article
			}
			if d.ChargeWeight != nil {
				memo.TotalWeight = memo.TotalWeight.Add(*d.ChargeWeight)
			}
		}
		memo.TotalFreight = memo.TotalFreight.Add(b.Freight)
	}

	if memo.MemoNumber == "" {
		memo.MemoNumber = fmt.Sprintf("LM-%d-%d", memo.FromBranchID, time.Now().UTC().Unix())
	}

	if err := h.Repo.CreateLoadingMemo(&memo); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create loading memo: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Loading memo created",
		Data:    memo,
	})
}

func (h *MemoHandler) ListLoadingMemos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListLoadingMemos()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list loading memos: " + err.Error(),
		})
		return
	}
	if list == nil {
		list = []models.LoadingMemo{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// CreateCashMemo records a payment against a booking and restates the amount
// in words for the printed receipt.
func (h *MemoHandler) CreateCashMemo(w http.ResponseWriter, r *http.Request) {
	var memo models.CashMemo
	if err := json.NewDecoder(r.Body).Decode(&memo); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if memo.BookingID == 0 || !memo.Amount.IsPositive() {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Booking id and a positive amount are required",
		})
		return
	}

	b, err := h.Bookings.GetBooking(memo.BookingID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to load booking: " + err.Error(),
		})
		return
	}
	if b == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Booking not found",
		})
		return
	}
	memo.LRNumber = b.LRNumber
	memo.AmountWords = utils.NumberToCurrencyWords(memo.Amount.InexactFloat64())

	if err := h.Repo.CreateCashMemo(&memo); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create cash memo: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Cash memo created",
		Data:    memo,
	})
}

func (h *MemoHandler) ListCashMemos(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("bookingId")
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "bookingId is required",
		})
		return
	}

	list, err := h.Repo.ListCashMemos(bookingID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list cash memos: " + err.Error(),
		})
		return
	}
	if list == nil {
		list = []models.CashMemo{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}
