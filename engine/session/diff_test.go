package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
)

func TestDiffRows(t *testing.T) {
	original := []models.BookingDetail{
		{BookingDetailID: 1, ShapeName: "Bag"},
		{BookingDetailID: 2, ShapeName: "Box"},
	}
	current := []models.BookingDetail{
		{BookingDetailID: 1, ShapeName: "Bag (edited)"},
		{BookingDetailID: 0, ShapeName: "Drum"},
	}

	out := DiffRows(original, current)
	require.Len(t, out, 3)

	assert.Equal(t, models.RowUpdated, out[0].Flag)
	assert.EqualValues(t, 1, out[0].BookingDetailID)
	assert.Equal(t, "Bag (edited)", out[0].ShapeName)

	assert.Equal(t, models.RowAdded, out[1].Flag)
	assert.Equal(t, "Drum", out[1].ShapeName)

	assert.Equal(t, models.RowDeleted, out[2].Flag)
	assert.EqualValues(t, 2, out[2].BookingDetailID)
}

func TestDiffRowsNoChanges(t *testing.T) {
	original := []models.BookingDetail{{BookingDetailID: 1}}
	out := DiffRows(original, original)
	require.Len(t, out, 1)
	assert.Equal(t, models.RowUpdated, out[0].Flag)
}

func TestDiffRowsAllNew(t *testing.T) {
	out := DiffRows(nil, []models.BookingDetail{{}, {}})
	require.Len(t, out, 2)
	assert.Equal(t, models.RowAdded, out[0].Flag)
	assert.Equal(t, models.RowAdded, out[1].Flag)
}
