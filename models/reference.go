package models

// ArticleShape is the packaging form of a line item (Bag, Box, Drum...).
type ArticleShape struct {
	ShapeID int64  `json:"shapeId" bson:"shape_id" db:"shape_id"`
	Name    string `json:"name" bson:"name" db:"name"`
}

type GoodsType struct {
	GoodsTypeID int64  `json:"goodsTypeId" bson:"goods_type_id" db:"goods_type_id"`
	Name        string `json:"name" bson:"name" db:"name"`
}

// BillType distinguishes the GST-applicable "Bill" from the non-GST forms.
type BillType struct {
	BillTypeID int64  `json:"billTypeId" bson:"bill_type_id" db:"bill_type_id"`
	Name       string `json:"name" bson:"name" db:"name"`
	IsGST      bool   `json:"isGst" bson:"is_gst" db:"is_gst"`
}

type PaymentType struct {
	PaymentTypeID int64  `json:"paymentTypeId" bson:"payment_type_id" db:"payment_type_id"`
	Name          string `json:"name" bson:"name" db:"name"`
}

// Rate type ids shared by freight and labour pricing.
const (
	RatePerArticle int64 = 1
	RatePerWeight  int64 = 2
	RateFixed      int64 = 3
)

type RateType struct {
	RateTypeID int64  `json:"rateTypeId" bson:"rate_type_id" db:"rate_type_id"`
	Name       string `json:"name" bson:"name" db:"name"`
}

// DefaultRateTypes is served when the backing store has no override rows;
// the three ids are fixed by the pricing rules.
var DefaultRateTypes = []RateType{
	{RateTypeID: RatePerArticle, Name: "Per Article"},
	{RateTypeID: RatePerWeight, Name: "Per Weight"},
	{RateTypeID: RateFixed, Name: "Fixed"},
}
