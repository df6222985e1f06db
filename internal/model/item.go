package model

import "github.com/shopspring/decimal"

// QuantityUnit is the unit an item quantity is expressed in.
type QuantityUnit string

const (
	UnitPiece QuantityUnit = "unit"
	UnitKilo  QuantityUnit = "kg"
	UnitLiter QuantityUnit = "l"
)

// ProductRefType identifies an external product reference scheme.
type ProductRefType string

const (
	ProductRefASIN ProductRefType = "asin"
	ProductRefSKU  ProductRefType = "sku"
)

// Item is a line item belonging to exactly one purchase transaction. Its
// price contributes additively to the owning transaction's amount.
type Item struct {
	Label      string                    `json:"label"`
	Price      decimal.Decimal           `json:"price"`
	Quantity   int                       `json:"quantity"`
	Unit       QuantityUnit              `json:"unit"`
	References map[ProductRefType]string `json:"references,omitempty"`
	URL        string                    `json:"url,omitempty"`
	Files      []FileRef                 `json:"files,omitempty"`
}

// SetReference records an external product reference.
func (i *Item) SetReference(refType ProductRefType, value string) {
	if i.References == nil {
		i.References = make(map[ProductRefType]string)
	}
	i.References[refType] = value
}

// AddFile attaches a file to the item.
func (i *Item) AddFile(f FileRef) {
	i.Files = append(i.Files, f)
}
