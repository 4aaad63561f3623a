package refdata

import (
	"sync"

	"freightdesk/models"
)

// ReferenceSource supplies the master lists the booking form needs.
type ReferenceSource interface {
	Branches() ([]models.Branch, error)
	ArticleShapes() ([]models.ArticleShape, error)
	GoodsTypes() ([]models.GoodsType, error)
	BillTypes() ([]models.BillType, error)
	PaymentTypes() ([]models.PaymentType, error)
	RateTypes() ([]models.RateType, error)
}

// PartySource supplies the active party lists.
type PartySource interface {
	ActiveConsignors() ([]models.Party, error)
	ActiveConsignees() ([]models.Party, error)
}

// Cache holds the session's reference data with keyed lookups. Reload
// replaces everything wholesale; nothing is ever appended across loads.
type Cache struct {
	ref     ReferenceSource
	parties PartySource

	mu         sync.RWMutex
	branches   map[int64]models.Branch
	shapes     map[int64]models.ArticleShape
	goods      map[int64]models.GoodsType
	billTypes  map[int64]models.BillType
	payTypes   map[int64]models.PaymentType
	rateTypes  map[int64]models.RateType
	consignors map[int64]models.Party
	consignees map[int64]models.Party

	branchList    []models.Branch
	shapeList     []models.ArticleShape
	goodsList     []models.GoodsType
	billTypeList  []models.BillType
	payTypeList   []models.PaymentType
	rateTypeList  []models.RateType
	consignorList []models.Party
	consigneeList []models.Party
}

func NewCache(ref ReferenceSource, parties PartySource) *Cache {
	return &Cache{ref: ref, parties: parties}
}

// Reload fetches every list and swaps the cache contents in one shot.
func (c *Cache) Reload() error {
	branches, err := c.ref.Branches()
	if err != nil {
		return err
	}
	shapes, err := c.ref.ArticleShapes()
	if err != nil {
		return err
	}
	goods, err := c.ref.GoodsTypes()
	if err != nil {
		return err
	}
	billTypes, err := c.ref.BillTypes()
	if err != nil {
		return err
	}
	payTypes, err := c.ref.PaymentTypes()
	if err != nil {
		return err
	}
	rateTypes, err := c.ref.RateTypes()
	if err != nil {
		return err
	}
	if len(rateTypes) == 0 {
		rateTypes = models.DefaultRateTypes
	}
	consignors, err := c.parties.ActiveConsignors()
	if err != nil {
		return err
	}
	consignees, err := c.parties.ActiveConsignees()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.branchList, c.branches = branches, make(map[int64]models.Branch, len(branches))
	for _, b := range branches {
		c.branches[b.BranchID] = b
	}
	c.shapeList, c.shapes = shapes, make(map[int64]models.ArticleShape, len(shapes))
	for _, s := range shapes {
		c.shapes[s.ShapeID] = s
	}
	c.goodsList, c.goods = goods, make(map[int64]models.GoodsType, len(goods))
	for _, g := range goods {
		c.goods[g.GoodsTypeID] = g
	}
	c.billTypeList, c.billTypes = billTypes, make(map[int64]models.BillType, len(billTypes))
	for _, bt := range billTypes {
		c.billTypes[bt.BillTypeID] = bt
	}
	c.payTypeList, c.payTypes = payTypes, make(map[int64]models.PaymentType, len(payTypes))
	for _, pt := range payTypes {
		c.payTypes[pt.PaymentTypeID] = pt
	}
	c.rateTypeList, c.rateTypes = rateTypes, make(map[int64]models.RateType, len(rateTypes))
	for _, rt := range rateTypes {
		c.rateTypes[rt.RateTypeID] = rt
	}
	c.consignorList, c.consignors = consignors, make(map[int64]models.Party, len(consignors))
	for _, p := range consignors {
		c.consignors[p.PartyID] = p
	}
	c.consigneeList, c.consignees = consignees, make(map[int64]models.Party, len(consignees))
	for _, p := range consignees {
		c.consignees[p.PartyID] = p
	}
	return nil
}

func (c *Cache) Branch(id int64) (models.Branch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.branches[id]
	return b, ok
}

func (c *Cache) Shape(id int64) (models.ArticleShape, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.shapes[id]
	return s, ok
}

func (c *Cache) GoodsType(id int64) (models.GoodsType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.goods[id]
	return g, ok
}

func (c *Cache) BillType(id int64) (models.BillType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	bt, ok := c.billTypes[id]
	return bt, ok
}

func (c *Cache) PaymentType(id int64) (models.PaymentType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pt, ok := c.payTypes[id]
	return pt, ok
}

func (c *Cache) RateType(id int64) (models.RateType, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rt, ok := c.rateTypes[id]
	return rt, ok
}

func (c *Cache) Consignor(id int64) (models.Party, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.consignors[id]
	return p, ok
}

func (c *Cache) Consignee(id int64) (models.Party, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.consignees[id]
	return p, ok
}

func (c *Cache) BranchList() []models.Branch           { c.mu.RLock(); defer c.mu.RUnlock(); return c.branchList }
func (c *Cache) ShapeList() []models.ArticleShape      { c.mu.RLock(); defer c.mu.RUnlock(); return c.shapeList }
func (c *Cache) GoodsTypeList() []models.GoodsType     { c.mu.RLock(); defer c.mu.RUnlock(); return c.goodsList }
func (c *Cache) BillTypeList() []models.BillType       { c.mu.RLock(); defer c.mu.RUnlock(); return c.billTypeList }
func (c *Cache) PaymentTypeList() []models.PaymentType { c.mu.RLock(); defer c.mu.RUnlock(); return c.payTypeList }
func (c *Cache) RateTypeList() []models.RateType       { c.mu.RLock(); defer c.mu.RUnlock(); return c.rateTypeList }
func (c *Cache) ConsignorList() []models.Party         { c.mu.RLock(); defer c.mu.RUnlock(); return c.consignorList }
func (c *Cache) ConsigneeList() []models.Party         { c.mu.RLock(); defer c.mu.RUnlock(); return c.consigneeList }
