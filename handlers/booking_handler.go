package handlers

import (
	"net/http"
	"strconv"

	"freightdesk/models"
	"freightdesk/repository"
)

type BookingHandler struct {
	Repo repository.BookingRepository
}

// ListBookings handler; query params become repository filters.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.ListBookings(filters)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to list bookings: " + err.Error(),
		})
		return
	}
	if list == nil {
		list = []*models.Booking{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetBookingByID handler
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid booking id",
		})
		return
	}

	b, err := h.Repo.GetBooking(bookingID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to fetch booking: " + err.Error(),
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
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: b})
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Missing booking id",
		})
		return
	}
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid booking id",
		})
		return
	}

	if err := h.Repo.DeleteBooking(bookingID); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete booking: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking deleted successfully"})
}

// NextLRNumber advances and returns the waybill sequence for a
// bill-type/branch pair.
func (h *BookingHandler) NextLRNumber(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	billTypeID, err1 := strconv.ParseInt(q.Get("billTypeId"), 10, 64)
	fromBranchID, err2 := strconv.ParseInt(q.Get("fromBranchId"), 10, 64)
	toBranchID, err3 := strconv.ParseInt(q.Get("toBranchId"), 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "billTypeId, fromBranchId, and toBranchId are required",
		})
		return
	}

	lr, err := h.Repo.NextLRNumber(billTypeID, fromBranchID, toBranchID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to get next LR number: " + err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: lr})
}
