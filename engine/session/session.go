package session

import (
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freightdesk/engine/calc"
	"freightdesk/engine/quote"
	"freightdesk/engine/validate"
	"freightdesk/models"
)

// BookingWriter is the slice of the booking store a session needs to submit.
type BookingWriter interface {
	CreateBooking(b *models.Booking) error
	UpdateBooking(b *models.Booking) error
	NextLRNumber(billTypeID, fromBranchID, toBranchID int64) (string, error)
}

// Session is one booking editing session. It owns the draft form, the line
// items, the in-progress row entry, and the quotation slot for the current
// selection. Every mutation runs the same pipeline in a fixed order:
// resolve quotation, recompute the entry row, recompute totals.
type Session struct {
	ID uuid.UUID

	mu sync.Mutex

	user  *models.AppUser
	clk   Clock
	cache *quote.Cache

	form     models.Booking
	formCopy *models.Booking // baseline when editing an existing booking

	rows         []models.BookingDetail
	originalRows []models.BookingDetail

	entry       models.BookingDetail
	editIndex   int
	rowSnapshot *models.BookingDetail // row values at edit start, floor for non-admins

	consignor *models.Party
	consignee *models.Party

	set       quote.Set
	direction quote.Direction
	effective models.EffectiveQuotation
}

// New opens a session for a fresh draft (existing == nil) or for editing a
// previously persisted booking.
func New(user *models.AppUser, existing *models.Booking, src quote.Source, clk Clock) *Session {
	s := &Session{
		ID:        uuid.New(),
		user:      user,
		clk:       clk,
		cache:     quote.NewCache(src),
		editIndex: -1,
		direction: quote.ByConsignee,
	}
	if existing != nil {
		s.form = *existing
		s.rows = append([]models.BookingDetail(nil), existing.Details...)
		s.originalRows = append([]models.BookingDetail(nil), existing.Details...)
		s.form.Details = nil
		cp := *existing
		cp.Details = nil
		s.formCopy = &cp
		if existing.QuotationBy == string(quote.ByConsignor) {
			s.direction = quote.ByConsignor
		}
	} else {
		s.form = models.Booking{
			Status:      models.BookingStatusDraft,
			BookingDate: clk.Now(),
			QuotationBy: string(quote.ByConsignee),
		}
	}
	s.recompute()
	return s
}

// View is the state returned to the caller after every mutation.
type View struct {
	Form      models.Booking            `json:"form"`
	Entry     models.BookingDetail      `json:"entry"`
	EditIndex int                       `json:"editIndex"`
	Direction quote.Direction           `json:"quotationBy"`
	Effective models.EffectiveQuotation `json:"effectiveQuotation"`
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := s.form
	form.Details = append([]models.BookingDetail(nil), s.rows...)
	return View{
		Form:      form,
		Entry:     s.entry,
		EditIndex: s.editIndex,
		Direction: s.direction,
		Effective: s.effective,
	}
}

// Selection carries a consignor/consignee/branch/bill-type change. Party
// records travel along so their defaults (payment type, bilty charge) can be
// force-applied when their quotation resolves.
type Selection struct {
	Consignor  *models.Party
	Consignee  *models.Party
	FromBranch int64
	ToBranch   int64
	BillType   int64
}

// SetSelection re-fetches the quotation slot for the new selection and runs
// the pipeline. A failed fetch degrades to an empty set and manual entry; a
// stale in-flight response is dropped without touching the form.
func (s *Session) SetSelection(sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.consignor = sel.Consignor
	s.consignee = sel.Consignee
	if sel.Consignor != nil {
		s.form.ConsignorID = sel.Consignor.PartyID
		s.form.ConsignorName = sel.Consignor.Name
		s.form.ConsignorPhone = sel.Consignor.Phone
		if sel.Consignor.GSTNumber != nil {
			s.form.ConsignorGST = validate.NormalizeGST(*sel.Consignor.GSTNumber)
		}
	}
	if sel.Consignee != nil {
		s.form.ConsigneeID = sel.Consignee.PartyID
		s.form.ConsigneeName = sel.Consignee.Name
		s.form.ConsigneePhone = sel.Consignee.Phone
		if sel.Consignee.GSTNumber != nil {
			s.form.ConsigneeGST = validate.NormalizeGST(*sel.Consignee.GSTNumber)
		}
	}
	s.form.FromBranchID = sel.FromBranch
	s.form.ToBranchID = sel.ToBranch
	s.form.BillTypeID = sel.BillType

	set, err := s.cache.FetchForSelection(quote.Selection{
		ConsignorID:  s.form.ConsignorID,
		ConsigneeID:  s.form.ConsigneeID,
		FromBranchID: sel.FromBranch,
		ToBranchID:   sel.ToBranch,
		BillTypeID:   sel.BillType,
	})
	switch {
	case err == quote.ErrStaleResponse:
		return nil
	case err != nil:
		log.Printf("quotation fetch degraded to manual entry: %v", err)
		s.set = quote.Set{}
	default:
		s.set = set
	}
	s.recompute()
	return nil
}

// SetQuotationBy records the user's direction preference. It only sticks
// when neither party has quotations; otherwise the precedence rules force
// the direction on the next recompute.
func (s *Session) SetQuotationBy(dir quote.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir == quote.ByConsignor || dir == quote.ByConsignee {
		s.direction = dir
		s.recompute()
	}
}

// HeaderPatch is a partial header update. Charges is keyed by the charge
// field name (freight, lrCharge, labour, aoc, collection, doorDelivery,
// oloc, insurance, other, carrierRisk, bhCharge, fov, cartage, sgst, cgst,
// igst); all charge fields share the same floor guard.
type HeaderPatch struct {
	Charges map[string]decimal.Decimal `json:"charges,omitempty"`

	PaymentTypeID   *int64           `json:"paymentTypeId,omitempty"`
	GoodsTypeID     *int64           `json:"goodsTypeId,omitempty"`
	InvoiceNumber   *string          `json:"invoiceNumber,omitempty"`
	DeclaredValue   *decimal.Decimal `json:"declaredValue,omitempty"`
	EwayBillNumber  *string          `json:"ewayBillNumber,omitempty"`
	Mode            *string          `json:"mode,omitempty"`
	PrivateMark     *string          `json:"privateMark,omitempty"`
	GoodsReceivedBy *string          `json:"goodsReceivedBy,omitempty"`
	Note            *string          `json:"note,omitempty"`
	ConsignorGST    *string          `json:"consignorGst,omitempty"`
	ConsigneeGST    *string          `json:"consigneeGst,omitempty"`
	ConsignorPhone  *string          `json:"consignorPhone,omitempty"`
	ConsigneePhone  *string          `json:"consigneePhone,omitempty"`
}

func (s *Session) PatchHeader(p HeaderPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check every charge against its floor before applying any, so a
	// rejected patch leaves the form untouched.
	for field, value := range p.Charges {
		if err := s.checkCharge(field, value); err != nil {
			return err
		}
	}
	for field, value := range p.Charges {
		chargeFields[field].set(&s.form, value)
	}
	if p.PaymentTypeID != nil {
		if s.effective.LockPaymentType {
			return ErrFieldLocked
		}
		s.form.PaymentTypeID = *p.PaymentTypeID
	}
	if p.GoodsTypeID != nil {
		s.form.GoodsTypeID = p.GoodsTypeID
	}
	if p.InvoiceNumber != nil {
		s.form.InvoiceNumber = *p.InvoiceNumber
	}
	if p.DeclaredValue != nil {
		s.form.DeclaredValue = *p.DeclaredValue
	}
	if p.EwayBillNumber != nil {
		s.form.EwayBillNumber = strings.TrimSpace(*p.EwayBillNumber)
	}
	if p.Mode != nil {
		s.form.Mode = *p.Mode
	}
	if p.PrivateMark != nil {
		s.form.PrivateMark = *p.PrivateMark
	}
	if p.GoodsReceivedBy != nil {
		s.form.GoodsReceivedBy = *p.GoodsReceivedBy
	}
	if p.Note != nil {
		s.form.Note = *p.Note
	}
	if p.ConsignorGST != nil {
		s.form.ConsignorGST = validate.NormalizeGST(*p.ConsignorGST)
	}
	if p.ConsigneeGST != nil {
		s.form.ConsigneeGST = validate.NormalizeGST(*p.ConsigneeGST)
	}
	if p.ConsignorPhone != nil {
		s.form.ConsignorPhone = *p.ConsignorPhone
	}
	if p.ConsigneePhone != nil {
		s.form.ConsigneePhone = *p.ConsigneePhone
	}
	s.recompute()
	return nil
}

// chargeFields maps a header charge name to its accessor pair. The same
// table serves the setter and the formCopy floor lookup.
var chargeFields = map[string]struct {
	get func(b *models.Booking) decimal.Decimal
	set func(b *models.Booking, v decimal.Decimal)
}{
	"freight":      {func(b *models.Booking) decimal.Decimal { return b.Freight }, func(b *models.Booking, v decimal.Decimal) { b.Freight = v }},
	"lrCharge":     {func(b *models.Booking) decimal.Decimal { return b.LRCharge }, func(b *models.Booking, v decimal.Decimal) { b.LRCharge = v }},
	"labour":       {func(b *models.Booking) decimal.Decimal { return b.Labour }, func(b *models.Booking, v decimal.Decimal) { b.Labour = v }},
	"aoc":          {func(b *models.Booking) decimal.Decimal { return b.AOC }, func(b *models.Booking, v decimal.Decimal) { b.AOC = v }},
	"collection":   {func(b *models.Booking) decimal.Decimal { return b.Collection }, func(b *models.Booking, v decimal.Decimal) { b.Collection = v }},
	"doorDelivery": {func(b *models.Booking) decimal.Decimal { return b.DoorDelivery }, func(b *models.Booking, v decimal.Decimal) { b.DoorDelivery = v }},
	"oloc":         {func(b *models.Booking) decimal.Decimal { return b.OLOC }, func(b *models.Booking, v decimal.Decimal) { b.OLOC = v }},
	"insurance":    {func(b *models.Booking) decimal.Decimal { return b.Insurance }, func(b *models.Booking, v decimal.Decimal) { b.Insurance = v }},
	"other":        {func(b *models.Booking) decimal.Decimal { return b.Other }, func(b *models.Booking, v decimal.Decimal) { b.Other = v }},
	"carrierRisk":  {func(b *models.Booking) decimal.Decimal { return b.CarrierRisk }, func(b *models.Booking, v decimal.Decimal) { b.CarrierRisk = v }},
	"bhCharge":     {func(b *models.Booking) decimal.Decimal { return b.BHCharge }, func(b *models.Booking, v decimal.Decimal) { b.BHCharge = v }},
	"fov":          {func(b *models.Booking) decimal.Decimal { return b.FOV }, func(b *models.Booking, v decimal.Decimal) { b.FOV = v }},
	"cartage":      {func(b *models.Booking) decimal.Decimal { return b.Cartage }, func(b *models.Booking, v decimal.Decimal) { b.Cartage = v }},
	"sgst":         {func(b *models.Booking) decimal.Decimal { return b.SGST }, func(b *models.Booking, v decimal.Decimal) { b.SGST = v }},
	"cgst":         {func(b *models.Booking) decimal.Decimal { return b.CGST }, func(b *models.Booking, v decimal.Decimal) { b.CGST = v }},
	"igst":         {func(b *models.Booking) decimal.Decimal { return b.IGST }, func(b *models.Booking, v decimal.Decimal) { b.IGST = v }},
}

func (s *Session) checkCharge(field string, v decimal.Decimal) error {
	acc, ok := chargeFields[field]
	if !ok {
		return ErrUnknownField
	}
	if field == "lrCharge" && s.effective.LockLRCharge {
		return ErrFieldLocked
	}
	if s.formCopy != nil && !s.user.IsAdmin() {
		floor := acc.get(s.formCopy)
		if v.LessThan(floor) {
			return &MonotonicityError{Field: field, Floor: floor}
		}
	}
	return nil
}

// RowPatch is a partial update of the in-progress row entry.
type RowPatch struct {
	ShapeID          *int64           `json:"shapeId,omitempty"`
	ShapeName        *string          `json:"shapeName,omitempty"`
	Article          *int64           `json:"article,omitempty"`
	Weight           *decimal.Decimal `json:"weight,omitempty"`
	ChargeWeight     *decimal.Decimal `json:"chargeWeight,omitempty"`
	RateTypeID       *int64           `json:"rateTypeId,omitempty"`
	Rate             *decimal.Decimal `json:"rate,omitempty"`
	LabourRateTypeID *int64           `json:"labourRateTypeId,omitempty"`
	LabourRate       *decimal.Decimal `json:"labourRate,omitempty"`
}

// PatchRow applies field edits to the row entry. A shape change re-resolves
// the effective quotation and prefills the rate fields from it. Weight edits
// raise the charge weight to the floor. For non-admins editing a persisted
// row, rate, article, weight, and charge weight may not drop below their
// edit-start snapshot.
func (s *Session) PatchRow(p RowPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := s.rowSnapshot != nil && s.entry.BookingID > 0 && !s.user.IsAdmin()

	if p.Article != nil {
		if guard && s.rowSnapshot.Article != nil && *p.Article < *s.rowSnapshot.Article {
			return &MonotonicityError{Field: "article", Floor: decimal.NewFromInt(*s.rowSnapshot.Article)}
		}
		s.entry.Article = p.Article
	}
	if p.Weight != nil {
		if guard && s.rowSnapshot.Weight != nil && p.Weight.LessThan(*s.rowSnapshot.Weight) {
			return &MonotonicityError{Field: "weight", Floor: *s.rowSnapshot.Weight}
		}
		s.entry.Weight = p.Weight
		s.entry.ChargeWeight = calc.ApplyWeightFloor(s.entry.Weight, s.entry.ChargeWeight)
	}
	if p.ChargeWeight != nil {
		if guard && s.rowSnapshot.ChargeWeight != nil && p.ChargeWeight.LessThan(*s.rowSnapshot.ChargeWeight) {
			return &MonotonicityError{Field: "chargeWeight", Floor: *s.rowSnapshot.ChargeWeight}
		}
		s.entry.ChargeWeight = p.ChargeWeight
	}
	if p.Rate != nil {
		if guard && s.rowSnapshot.Rate != nil && p.Rate.LessThan(*s.rowSnapshot.Rate) {
			return &MonotonicityError{Field: "rate", Floor: *s.rowSnapshot.Rate}
		}
		s.entry.Rate = p.Rate
	}
	if p.RateTypeID != nil {
		s.entry.RateTypeID = *p.RateTypeID
	}
	if p.LabourRate != nil {
		s.entry.LabourRate = p.LabourRate
	}
	if p.LabourRateTypeID != nil {
		s.entry.LabourRateTypeID = *p.LabourRateTypeID
	}
	if p.ShapeID != nil {
		s.entry.ShapeID = *p.ShapeID
		if p.ShapeName != nil {
			s.entry.ShapeName = *p.ShapeName
		}
		s.applyEffectiveToEntry()
	}
	s.recompute()
	return nil
}

// AddRow validates the entry and appends it to the table, or replaces the
// row being edited. The entry then returns to its default state.
func (s *Session) AddRow() []validate.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := validate.Row(&s.entry); len(errs) > 0 {
		return errs
	}
	row := calc.ComputeRow(s.entry)
	if s.editIndex >= 0 && s.editIndex < len(s.rows) {
		s.rows[s.editIndex] = row
	} else {
		s.rows = append(s.rows, row)
	}
	s.clearEntry()
	s.recompute()
	return nil
}

// EditRow loads a row into the entry form and snapshots it as the floor for
// the non-admin guard.
func (s *Session) EditRow(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.rows) {
		return ErrNoSuchRow
	}
	s.entry = s.rows[index]
	snap := s.rows[index]
	s.rowSnapshot = &snap
	s.editIndex = index
	s.recompute()
	return nil
}

// DeleteRow removes a row. Admins may always delete; other users only while
// the booking is not finalized and only rows that were never persisted.
func (s *Session) DeleteRow(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.rows) {
		return ErrNoSuchRow
	}
	if !s.user.IsAdmin() {
		if s.form.Status == models.BookingStatusFinalized || s.rows[index].BookingID > 0 {
			return ErrRowLocked
		}
	}
	s.rows = append(s.rows[:index], s.rows[index+1:]...)
	if s.editIndex == index {
		s.clearEntry()
	}
	s.recompute()
	return nil
}

// Submit validates the booking, tags the row diff when updating, and writes
// through the store. A successful create resets the session to a fresh
// draft; the persisted booking is returned either way.
func (s *Session) Submit(store BookingWriter) (*models.Booking, []validate.FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.form
	b.Details = append([]models.BookingDetail(nil), s.rows...)
	b.QuotationBy = string(s.direction)

	if errs := validate.Booking(&b); len(errs) > 0 {
		return nil, errs, nil
	}

	if b.BookingID > 0 {
		b.Details = DiffRows(s.originalRows, s.rows)
		now := s.clk.Now()
		b.UpdatedAt = &now
		if err := store.UpdateBooking(&b); err != nil {
			return nil, nil, err
		}
		// Rebase on the persisted state so a further edit diffs against it.
		kept := make([]models.BookingDetail, 0, len(b.Details))
		for _, d := range b.Details {
			if d.Flag == models.RowDeleted {
				continue
			}
			d.Flag = ""
			kept = append(kept, d)
		}
		s.rows = append([]models.BookingDetail(nil), kept...)
		s.originalRows = append([]models.BookingDetail(nil), kept...)
		s.form = b
		s.form.Details = nil
		cp := s.form
		s.formCopy = &cp
		s.recompute()
		return &b, nil, nil
	}

	if b.LRNumber == "" {
		lr, err := store.NextLRNumber(b.BillTypeID, b.FromBranchID, b.ToBranchID)
		if err != nil {
			return nil, nil, err
		}
		b.LRNumber = lr
	}
	b.CreatedAt = s.clk.Now()
	if s.user != nil {
		b.CreatedBy = s.user.ID
	}
	if err := store.CreateBooking(&b); err != nil {
		return nil, nil, err
	}
	s.reset()
	return &b, nil, nil
}

func (s *Session) reset() {
	s.form = models.Booking{
		Status:      models.BookingStatusDraft,
		BookingDate: s.clk.Now(),
		QuotationBy: string(quote.ByConsignee),
	}
	s.formCopy = nil
	s.rows = nil
	s.originalRows = nil
	s.consignor = nil
	s.consignee = nil
	s.set = quote.Set{}
	s.direction = quote.ByConsignee
	s.clearEntry()
	s.recompute()
}

func (s *Session) clearEntry() {
	s.entry = models.BookingDetail{}
	s.rowSnapshot = nil
	s.editIndex = -1
}

// applyEffectiveToEntry prefills the entry's rate fields from the resolved
// quotation for its shape, or falls back to per-weight manual entry.
func (s *Session) applyEffectiveToEntry() {
	eff := quote.Resolve(s.set, s.direction, s.entry.ShapeID, s.form.GoodsTypeID)
	if eff.Found {
		rate := eff.Rate
		s.entry.Rate = &rate
		s.entry.RateTypeID = eff.RateTypeID
		if !eff.LabourRate.IsZero() {
			lr := eff.LabourRate
			s.entry.LabourRate = &lr
		}
		s.entry.LabourRateTypeID = eff.LabourRateTypeID
	} else {
		s.entry.RateTypeID = models.RatePerWeight
		s.entry.LabourRateTypeID = models.RatePerWeight
	}
}

// recompute is the fixed-order pipeline run after every mutation: resolve
// the quotation direction and effective quotation, recompute the entry row,
// re-aggregate the line items, then retotal the header.
func (s *Session) recompute() {
	s.direction = quote.ResolveDirection(len(s.set.Consignor) > 0, len(s.set.Consignee) > 0, s.direction)
	s.form.QuotationBy = string(s.direction)

	s.effective = quote.Resolve(s.set, s.direction, s.entry.ShapeID, s.form.GoodsTypeID)
	s.applyPartyDefaults()

	s.entry = calc.ComputeRow(s.entry)

	s.form.Freight, s.form.Labour = calc.AggregateRows(s.rows)
	if s.effective.Found {
		if !s.effective.DoorDelivery.IsZero() {
			s.form.DoorDelivery = s.effective.DoorDelivery
		}
		if !s.effective.Collection.IsZero() {
			s.form.Collection = s.effective.Collection
		}
	}
	calc.Totals(&s.form)
}

// applyPartyDefaults force-sets the header payment type and LR charge from
// the quoting party once its quotation resolves. The matching lock flags on
// the effective quotation keep the fields non-editable.
func (s *Session) applyPartyDefaults() {
	if !s.effective.LockPaymentType {
		return
	}
	party := s.consignee
	if s.effective.Source == models.SourceConsignor {
		party = s.consignor
	}
	if party == nil {
		return
	}
	if party.PaymentTypeID != nil {
		s.form.PaymentTypeID = *party.PaymentTypeID
	}
	s.form.LRCharge = party.BiltyCharge
}
