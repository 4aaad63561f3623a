package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"freightdesk/models"
)

type BookingClient struct {
	*Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{Client: c}
}

func (c *BookingClient) CreateBooking(b *models.Booking) error {
	var created struct {
		BookingID int64  `json:"bookingId"`
		LRNumber  string `json:"lrNumber"`
	}
	if err := c.call(http.MethodPost, "/bookings", b, &created); err != nil {
		return err
	}
	b.BookingID = created.BookingID
	if created.LRNumber != "" {
		b.LRNumber = created.LRNumber
	}
	return nil
}

func (c *BookingClient) UpdateBooking(b *models.Booking) error {
	return c.call(http.MethodPut, fmt.Sprintf("/bookings/%d", b.BookingID), b, nil)
}

func (c *BookingClient) GetBooking(bookingID int64) (*models.Booking, error) {
	var b models.Booking
	if err := c.call(http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), nil, &b); err != nil {
		return nil, err
	}
	if b.BookingID == 0 {
		return nil, nil
	}
	return &b, nil
}

// listFilterParams maps the repository filter keys onto the upstream's
// camelCase query parameters.
var listFilterParams = map[string]string{
	"booking_id":     "bookingId",
	"lr_number":      "lrNumber",
	"from_branch_id": "fromBranchId",
	"to_branch_id":   "toBranchId",
	"bill_type_id":   "billTypeId",
	"consignor_id":   "consignorId",
	"consignee_id":   "consigneeId",
	"status":         "status",
}

func (c *BookingClient) ListBookings(filters map[string]interface{}) ([]*models.Booking, error) {
	q := url.Values{}
	for key, param := range listFilterParams {
		if v, ok := filters[key]; ok {
			q.Set(param, fmt.Sprint(v))
		}
	}
	path := "/bookings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []*models.Booking
	err := c.call(http.MethodGet, path, nil, &out)
	return out, err
}

func (c *BookingClient) DeleteBooking(bookingID int64) error {
	return c.call(http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil)
}

func (c *BookingClient) NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error) {
	var lr string
	path := fmt.Sprintf("/bookings/next-lr-number?billTypeId=%d&fromBranchId=%d&toBranchId=%d",
		billTypeID, fromBranchID, toBranchID)
	if err := c.call(http.MethodGet, path, nil, &lr); err != nil {
		return "", err
	}
	return lr, nil
}
