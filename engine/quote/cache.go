package quote

import (
	"errors"
	"fmt"
	"sync"

	"freightdesk/models"
)

// ErrFetchFailed wraps a failed quotation fetch; callers fall back to an
// empty set and free-form rate entry.
var ErrFetchFailed = errors.New("quotation fetch failed")

// ErrStaleResponse marks a fetch whose selection key changed while the
// request was in flight. The response is dropped, never applied.
var ErrStaleResponse = errors.New("stale quotation response dropped")

// Source is the upstream the cache pulls quotations from.
type Source interface {
	QuotationsByParty(partyID int64) ([]models.Quotation, error)
	CompanyQuotationsByBranch(fromBranchID, toBranchID int64) ([]models.Quotation, error)
}

// Selection is the form state a fetch is made for.
type Selection struct {
	ConsignorID  int64
	ConsigneeID  int64
	FromBranchID int64
	ToBranchID   int64
	BillTypeID   int64
}

type slotKey struct {
	toBranchID int64
	billTypeID int64
}

// Cache is a single-slot quotation cache keyed by (toBranchId, billTypeId).
// The slot is replaced wholesale on every key change, never appended to, so
// quotations from an earlier branch selection cannot leak into the current
// one. Each fetch carries a sequence number; a response whose sequence is no
// longer current is dropped.
type Cache struct {
	src Source

	mu    sync.Mutex
	key   slotKey
	seq   uint64
	set   Set
	valid bool
}

func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// FetchForSelection fetches the three quotation tiers for the selection and
// installs them as the current slot. With no party selected it returns an
// empty set without touching the upstream. On fetch failure the slot is
// cleared and ErrFetchFailed is returned alongside the empty set.
func (c *Cache) FetchForSelection(sel Selection) (Set, error) {
	c.mu.Lock()
	key := slotKey{toBranchID: sel.ToBranchID, billTypeID: sel.BillTypeID}
	if key != c.key {
		c.key = key
		c.set = Set{}
		c.valid = false
	}
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	if sel.ConsignorID == 0 && sel.ConsigneeID == 0 {
		return Set{}, nil
	}

	set, err := c.fetch(sel)
	if err != nil {
		c.mu.Lock()
		if seq == c.seq {
			c.set = Set{}
			c.valid = false
		}
		c.mu.Unlock()
		return Set{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return Set{}, ErrStaleResponse
	}
	set.Normalize()
	c.set = set
	c.valid = true
	return set, nil
}

// Current returns the installed slot, if any.
func (c *Cache) Current() (Set, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set, c.valid
}

func (c *Cache) fetch(sel Selection) (Set, error) {
	var set Set
	var err error

	if sel.ConsignorID > 0 {
		set.Consignor, err = c.src.QuotationsByParty(sel.ConsignorID)
		if err != nil {
			return Set{}, err
		}
	}
	if sel.ConsigneeID > 0 {
		set.Consignee, err = c.src.QuotationsByParty(sel.ConsigneeID)
		if err != nil {
			return Set{}, err
		}
	}

	company, err := c.src.CompanyQuotationsByBranch(sel.FromBranchID, sel.ToBranchID)
	if err != nil {
		return Set{}, err
	}
	for _, q := range company {
		if q.BillTypeID == sel.BillTypeID {
			set.Company = append(set.Company, q)
		}
	}
	return set, nil
}
