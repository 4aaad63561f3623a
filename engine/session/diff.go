package session

import "freightdesk/models"

// DiffRows tags the edited row set against the server-loaded originals for
// an update payload: current rows are added (no persisted id) or updated,
// and originals missing from the edited set are re-appended as deleted.
// Membership is decided by bookingDetailId set difference.
func DiffRows(original, current []models.BookingDetail) []models.BookingDetail {
	out := make([]models.BookingDetail, 0, len(current))
	seen := make(map[int64]bool, len(current))

	for _, row := range current {
		if row.BookingDetailID > 0 {
			row.Flag = models.RowUpdated
			seen[row.BookingDetailID] = true
		} else {
			row.Flag = models.RowAdded
		}
		out = append(out, row)
	}

	for _, row := range original {
		if row.BookingDetailID > 0 && !seen[row.BookingDetailID] {
			row.Flag = models.RowDeleted
			out = append(out, row)
		}
	}
	return out
}
