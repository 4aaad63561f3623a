package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/engine/quote"
	"freightdesk/models"
)

var testClock = FixedClock{T: time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC)}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func ip(n int64) *int64 { return &n }

type stubSource struct {
	party   map[int64][]models.Quotation
	company []models.Quotation
}

func (s *stubSource) QuotationsByParty(partyID int64) ([]models.Quotation, error) {
	return s.party[partyID], nil
}

func (s *stubSource) CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error) {
	return s.company, nil
}

type stubStore struct {
	created *models.Booking
	updated *models.Booking
	lr      string
}

func (s *stubStore) CreateBooking(b *models.Booking) error {
	b.BookingID = 101
	cp := *b
	s.created = &cp
	return nil
}

func (s *stubStore) UpdateBooking(b *models.Booking) error {
	cp := *b
	s.updated = &cp
	return nil
}

func (s *stubStore) NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error) {
	if s.lr == "" {
		s.lr = "LR-0001"
	}
	return s.lr, nil
}

func staff() *models.AppUser {
	return &models.AppUser{ID: 7, Role: models.RoleStaff}
}

func admin() *models.AppUser {
	return &models.AppUser{ID: 1, Role: models.RoleAdmin}
}

func fillHeader(t *testing.T, s *Session) {
	t.Helper()
	err := s.PatchHeader(HeaderPatch{
		InvoiceNumber:   strp("INV-9"),
		DeclaredValue:   dp("12000"),
		Mode:            strp("Godown"),
		PrivateMark:     strp("PM"),
		GoodsReceivedBy: strp("Suresh"),
		PaymentTypeID:   ip(2),
		ConsignorPhone:  strp("9876543210"),
		ConsigneePhone:  strp("9123456780"),
	})
	require.NoError(t, err)
}

func strp(s string) *string { return &s }

func consignorParty() *models.Party {
	return &models.Party{PartyID: 11, Name: "Shree Traders", Phone: "9876543210", PaymentTypeID: ip(3), BiltyCharge: d("25")}
}

func consigneeParty() *models.Party {
	return &models.Party{PartyID: 22, Name: "Gupta & Sons", Phone: "9123456780"}
}

func TestQuotationPrefillOnShapeSelect(t *testing.T) {
	src := &stubSource{
		party: map[int64][]models.Quotation{
			11: {{QuotationID: 1, Scope: models.ScopeParty, ShapeID: ip(5), Rate: d("10"), RateTypeID: models.RatePerArticle, HamaliRate: d("2"), HamaliRateTypeID: models.RatePerArticle}},
		},
	}
	s := New(staff(), nil, src, testClock)

	require.NoError(t, s.SetSelection(Selection{
		Consignor:  consignorParty(),
		Consignee:  consigneeParty(),
		FromBranch: 1, ToBranch: 4, BillType: 1,
	}))

	v := s.View()
	assert.Equal(t, quote.ByConsignor, v.Direction, "lone quoting party forces the direction")

	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(5), ShapeName: strp("Bag")}))
	v = s.View()
	require.NotNil(t, v.Entry.Rate)
	assert.True(t, v.Entry.Rate.Equal(d("10")))
	assert.Equal(t, models.RatePerArticle, v.Entry.RateTypeID)

	// party defaults are forced onto the header and locked
	assert.EqualValues(t, 3, v.Form.PaymentTypeID)
	assert.True(t, v.Form.LRCharge.Equal(d("25")))
	assert.True(t, v.Effective.LockPaymentType)
	err := s.PatchHeader(HeaderPatch{PaymentTypeID: ip(9)})
	assert.ErrorIs(t, err, ErrFieldLocked)
}

func TestManualEntryWithoutQuotations(t *testing.T) {
	s := New(staff(), nil, &stubSource{}, testClock)
	require.NoError(t, s.SetSelection(Selection{
		Consignor: consignorParty(), Consignee: consigneeParty(),
		FromBranch: 1, ToBranch: 4, BillType: 1,
	}))

	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(5)}))
	v := s.View()
	assert.False(t, v.Effective.Found)
	assert.Nil(t, v.Entry.Rate)
	assert.Equal(t, models.RatePerWeight, v.Entry.RateTypeID)
	assert.Equal(t, models.RatePerWeight, v.Entry.LabourRateTypeID)
}

func TestRowLifecycleAndAggregates(t *testing.T) {
	s := New(staff(), nil, &stubSource{}, testClock)

	require.NoError(t, s.PatchRow(RowPatch{
		ShapeID: ip(5), ShapeName: strp("Bag"),
		Article: ip(4), Weight: dp("100"),
		RateTypeID: ip(models.RatePerWeight), Rate: dp("1.5"),
		LabourRateTypeID: ip(models.RatePerArticle), LabourRate: dp("3"),
	}))
	require.Empty(t, s.AddRow())

	v := s.View()
	require.Len(t, v.Form.Details, 1)
	assert.True(t, v.Form.Details[0].Freight.Equal(d("150")), "charge weight floored to weight drives freight")
	assert.True(t, v.Form.Details[0].TotalLabour.Equal(d("12")))
	assert.True(t, v.Form.Freight.Equal(d("150")))
	assert.True(t, v.Form.Labour.Equal(d("12")))
	assert.True(t, v.Form.GrandTotal.Equal(d("162")))
	assert.Zero(t, v.Entry.ShapeID, "entry returns to default after add")

	// edit in place
	require.NoError(t, s.EditRow(0))
	require.NoError(t, s.PatchRow(RowPatch{Rate: dp("2")}))
	require.Empty(t, s.AddRow())
	v = s.View()
	require.Len(t, v.Form.Details, 1)
	assert.True(t, v.Form.Details[0].Freight.Equal(d("200")))

	require.NoError(t, s.DeleteRow(0))
	assert.Empty(t, s.View().Form.Details)
}

func TestWeightFloorOnEdit(t *testing.T) {
	s := New(staff(), nil, &stubSource{}, testClock)
	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(5), ChargeWeight: dp("80")}))
	require.NoError(t, s.PatchRow(RowPatch{Weight: dp("120")}))
	v := s.View()
	require.NotNil(t, v.Entry.ChargeWeight)
	assert.True(t, v.Entry.ChargeWeight.Equal(d("120")))

	// lowering weight leaves charge weight alone
	require.NoError(t, s.PatchRow(RowPatch{Weight: dp("90")}))
	assert.True(t, s.View().Entry.ChargeWeight.Equal(d("120")))
}

func existingBooking() *models.Booking {
	w := d("100")
	r := d("2")
	a := int64(5)
	return &models.Booking{
		BookingID: 55, LRNumber: "LR-0042", Status: models.BookingStatusDraft,
		ToBranchID: 4, BillTypeID: 1,
		ConsignorName: "Shree Traders", ConsignorPhone: "9876543210",
		ConsigneeName: "Gupta & Sons", ConsigneePhone: "9123456780",
		PaymentTypeID: 2, InvoiceNumber: "INV-1", DeclaredValue: d("10000"),
		PrivateMark: "PM", GoodsReceivedBy: "Suresh", Mode: "Godown",
		LRCharge: d("50"),
		Details: []models.BookingDetail{
			{BookingDetailID: 1, BookingID: 55, ShapeID: 5, ShapeName: "Bag", Article: &a, Weight: &w, ChargeWeight: &w, RateTypeID: models.RatePerWeight, Rate: &r},
		},
	}
}

func TestHeaderMonotonicityGuard(t *testing.T) {
	t.Run("non-admin cannot lower below baseline", func(t *testing.T) {
		s := New(staff(), existingBooking(), &stubSource{}, testClock)
		err := s.PatchHeader(HeaderPatch{Charges: map[string]decimal.Decimal{"lrCharge": d("40")}})
		var mono *MonotonicityError
		require.ErrorAs(t, err, &mono)
		assert.Equal(t, "lrCharge", mono.Field)
		assert.True(t, mono.Floor.Equal(d("50")))
		assert.True(t, s.View().Form.LRCharge.Equal(d("50")), "field reverts to the floor")
	})

	t.Run("raising succeeds silently", func(t *testing.T) {
		s := New(staff(), existingBooking(), &stubSource{}, testClock)
		require.NoError(t, s.PatchHeader(HeaderPatch{Charges: map[string]decimal.Decimal{"lrCharge": d("60")}}))
		assert.True(t, s.View().Form.LRCharge.Equal(d("60")))
	})

	t.Run("admin is exempt", func(t *testing.T) {
		s := New(admin(), existingBooking(), &stubSource{}, testClock)
		require.NoError(t, s.PatchHeader(HeaderPatch{Charges: map[string]decimal.Decimal{"lrCharge": d("40")}}))
	})

	t.Run("new booking has no baseline", func(t *testing.T) {
		s := New(staff(), nil, &stubSource{}, testClock)
		require.NoError(t, s.PatchHeader(HeaderPatch{Charges: map[string]decimal.Decimal{"lrCharge": d("5")}}))
	})

	t.Run("rejected patch applies none of its charges", func(t *testing.T) {
		s := New(staff(), existingBooking(), &stubSource{}, testClock)
		err := s.PatchHeader(HeaderPatch{Charges: map[string]decimal.Decimal{
			"other":    d("200"),
			"lrCharge": d("40"),
		}})
		var mono *MonotonicityError
		require.ErrorAs(t, err, &mono)
		v := s.View()
		assert.True(t, v.Form.Other.IsZero(), "valid charge in the same patch must not slip through")
		assert.True(t, v.Form.LRCharge.Equal(d("50")))
	})
}

func TestRowMonotonicityGuard(t *testing.T) {
	t.Run("non-admin cannot lower a persisted row", func(t *testing.T) {
		s := New(staff(), existingBooking(), &stubSource{}, testClock)
		require.NoError(t, s.EditRow(0))
		err := s.PatchRow(RowPatch{Weight: dp("90")})
		var mono *MonotonicityError
		require.ErrorAs(t, err, &mono)
		assert.Equal(t, "weight", mono.Field)
		assert.True(t, s.View().Entry.Weight.Equal(d("100")))
	})

	t.Run("admin may lower", func(t *testing.T) {
		s := New(admin(), existingBooking(), &stubSource{}, testClock)
		require.NoError(t, s.EditRow(0))
		require.NoError(t, s.PatchRow(RowPatch{Weight: dp("90")}))
	})

	t.Run("unpersisted rows are not guarded", func(t *testing.T) {
		s := New(staff(), nil, &stubSource{}, testClock)
		require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(5), Article: ip(2), Weight: dp("100"), RateTypeID: ip(2), Rate: dp("1")}))
		require.Empty(t, s.AddRow())
		require.NoError(t, s.EditRow(0))
		require.NoError(t, s.PatchRow(RowPatch{Weight: dp("50")}))
	})
}

func TestDeleteRowPermissions(t *testing.T) {
	t.Run("non-admin cannot delete persisted rows", func(t *testing.T) {
		s := New(staff(), existingBooking(), &stubSource{}, testClock)
		assert.ErrorIs(t, s.DeleteRow(0), ErrRowLocked)
	})

	t.Run("non-admin cannot delete from a finalized booking", func(t *testing.T) {
		b := existingBooking()
		b.Status = models.BookingStatusFinalized
		b.Details[0].BookingDetailID = 0
		b.Details[0].BookingID = 0
		s := New(staff(), b, &stubSource{}, testClock)
		assert.ErrorIs(t, s.DeleteRow(0), ErrRowLocked)
	})

	t.Run("admin deletes anything", func(t *testing.T) {
		s := New(admin(), existingBooking(), &stubSource{}, testClock)
		require.NoError(t, s.DeleteRow(0))
	})
}

func TestSubmitCreate(t *testing.T) {
	s := New(staff(), nil, &stubSource{}, testClock)
	require.NoError(t, s.SetSelection(Selection{
		Consignor: consignorParty(), Consignee: consigneeParty(),
		FromBranch: 1, ToBranch: 4, BillType: 1,
	}))
	fillHeader(t, s)
	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(5), ShapeName: strp("Bag"), Article: ip(4), Weight: dp("100"), RateTypeID: ip(2), Rate: dp("1.5")}))
	require.Empty(t, s.AddRow())

	store := &stubStore{}
	b, fieldErrs, err := s.Submit(store)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, store.created)
	assert.Equal(t, "LR-0001", b.LRNumber, "LR number assigned from the sequence")
	assert.EqualValues(t, 7, b.CreatedBy)
	assert.Equal(t, testClock.T, b.CreatedAt)

	// session resets to a fresh draft after a successful create
	v := s.View()
	assert.Zero(t, v.Form.BookingID)
	assert.Empty(t, v.Form.Details)
	assert.Equal(t, quote.ByConsignee, v.Direction)
}

func TestSubmitValidationBlocks(t *testing.T) {
	s := New(staff(), nil, &stubSource{}, testClock)
	store := &stubStore{}
	b, fieldErrs, err := s.Submit(store)
	require.NoError(t, err)
	assert.Nil(t, b)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, "toBranchId", fieldErrs[0].Field, "first failing field gets focus")
	assert.Nil(t, store.created)
}

func TestSubmitUpdateDiffsRows(t *testing.T) {
	s := New(admin(), existingBooking(), &stubSource{}, testClock)

	// replace the persisted row's rate and add a brand new row
	require.NoError(t, s.EditRow(0))
	require.NoError(t, s.PatchRow(RowPatch{Rate: dp("3")}))
	require.Empty(t, s.AddRow())
	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(6), ShapeName: strp("Box"), Article: ip(1), Weight: dp("20"), RateTypeID: ip(3), Rate: dp("75")}))
	require.Empty(t, s.AddRow())

	store := &stubStore{}
	b, fieldErrs, err := s.Submit(store)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, store.updated)
	require.Len(t, b.Details, 2)
	assert.Equal(t, models.RowUpdated, b.Details[0].Flag)
	assert.Equal(t, models.RowAdded, b.Details[1].Flag)
	require.NotNil(t, b.UpdatedAt)
	assert.Equal(t, testClock.T, *b.UpdatedAt)
}

func TestSubmitUpdateMarksRemovedRowsDeleted(t *testing.T) {
	s := New(admin(), existingBooking(), &stubSource{}, testClock)
	require.NoError(t, s.DeleteRow(0))
	require.NoError(t, s.PatchRow(RowPatch{ShapeID: ip(6), Article: ip(1), Weight: dp("20"), RateTypeID: ip(3), Rate: dp("75")}))
	require.Empty(t, s.AddRow())

	store := &stubStore{}
	b, fieldErrs, err := s.Submit(store)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.Len(t, b.Details, 2)
	assert.Equal(t, models.RowAdded, b.Details[0].Flag)
	assert.Equal(t, models.RowDeleted, b.Details[1].Flag)
	assert.EqualValues(t, 1, b.Details[1].BookingDetailID)
}

func TestManagerLifecycle(t *testing.T) {
	clk := &tickingClock{t: testClock.T}
	m := NewManager(&stubSource{}, clk, 30*time.Minute)

	s := m.Open(staff(), nil)
	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	clk.t = clk.t.Add(31 * time.Minute)
	assert.Equal(t, 1, m.Sweep())
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

type tickingClock struct {
	t time.Time
}

func (c *tickingClock) Now() time.Time { return c.t }
