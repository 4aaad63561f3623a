package repository

import "freightdesk/models"

// BookingRepository persists waybills and hands out LR numbers.
type BookingRepository interface {
	CreateBooking(b *models.Booking) error
	UpdateBooking(b *models.Booking) error
	GetBooking(bookingID int64) (*models.Booking, error)
	ListBookings(filters map[string]interface{}) ([]*models.Booking, error)
	DeleteBooking(bookingID int64) error
	NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error)
}
