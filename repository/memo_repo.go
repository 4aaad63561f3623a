package repository

import "freightdesk/models"

// MemoRepository persists the documents derived from bookings.
type MemoRepository interface {
	CreateLoadingMemo(m *models.LoadingMemo) error
	ListLoadingMemos() ([]models.LoadingMemo, error)
	CreateCashMemo(m *models.CashMemo) error
	ListCashMemos(bookingID int64) ([]models.CashMemo, error)
}
