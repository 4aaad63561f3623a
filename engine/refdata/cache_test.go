package refdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/models"
)

type stubRef struct {
	branches []models.Branch
	shapes   []models.ArticleShape
	err      error
}

func (s *stubRef) Branches() ([]models.Branch, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.branches, nil
}
func (s *stubRef) ArticleShapes() ([]models.ArticleShape, error) { return s.shapes, nil }
func (s *stubRef) GoodsTypes() ([]models.GoodsType, error)       { return nil, nil }
func (s *stubRef) BillTypes() ([]models.BillType, error)         { return nil, nil }
func (s *stubRef) PaymentTypes() ([]models.PaymentType, error)   { return nil, nil }
func (s *stubRef) RateTypes() ([]models.RateType, error)         { return nil, nil }

type stubParties struct {
	consignors []models.Party
}

func (s *stubParties) ActiveConsignors() ([]models.Party, error) { return s.consignors, nil }
func (s *stubParties) ActiveConsignees() ([]models.Party, error) { return nil, nil }

func TestReloadAndLookups(t *testing.T) {
	ref := &stubRef{
		branches: []models.Branch{{BranchID: 4, Name: "Indore"}},
		shapes:   []models.ArticleShape{{ShapeID: 5, Name: "Bag"}},
	}
	parties := &stubParties{consignors: []models.Party{{PartyID: 11, Name: "Shree Traders"}}}

	c := NewCache(ref, parties)
	require.NoError(t, c.Reload())

	b, ok := c.Branch(4)
	require.True(t, ok)
	assert.Equal(t, "Indore", b.Name)

	_, ok = c.Branch(99)
	assert.False(t, ok)

	p, ok := c.Consignor(11)
	require.True(t, ok)
	assert.Equal(t, "Shree Traders", p.Name)

	// fixed rate types are served even when the store has none
	rt, ok := c.RateType(models.RatePerWeight)
	require.True(t, ok)
	assert.Equal(t, "Per Weight", rt.Name)
}

func TestReloadReplacesWholesale(t *testing.T) {
	ref := &stubRef{branches: []models.Branch{{BranchID: 4, Name: "Indore"}}}
	c := NewCache(ref, &stubParties{})
	require.NoError(t, c.Reload())

	ref.branches = []models.Branch{{BranchID: 9, Name: "Bhopal"}}
	require.NoError(t, c.Reload())

	_, ok := c.Branch(4)
	assert.False(t, ok, "old entries must not survive a reload")
	_, ok = c.Branch(9)
	assert.True(t, ok)
	assert.Len(t, c.BranchList(), 1)
}

func TestReloadFailureKeepsOldData(t *testing.T) {
	ref := &stubRef{branches: []models.Branch{{BranchID: 4}}}
	c := NewCache(ref, &stubParties{})
	require.NoError(t, c.Reload())

	ref.err = errors.New("down")
	require.Error(t, c.Reload())
	_, ok := c.Branch(4)
	assert.True(t, ok)
}
