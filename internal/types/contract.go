package types

import (
	"github.com/shopspring/decimal"
)

// Contract is one tradable instrument of a commodity. Multiple contracts
// may share a bare code across exchanges; the exchange-qualified full code
// is unique.
type Contract struct {
	Code     string
	Name     string
	Exchange string
	Product  string

	// AltCode is an alternate vendor code; it defaults to Code when the
	// configuration does not set one.
	AltCode string

	// OpenDate and ExpireDate bound the contract's validity as YYYYMMDD
	// values, 0 meaning unbounded on that side.
	OpenDate   uint32
	ExpireDate uint32

	MaxMarketQty uint32
	MaxLimitQty  uint32
	MinMarketQty uint32
	MinLimitQty  uint32

	LongMarginRatio  decimal.Decimal
	ShortMarginRatio decimal.Decimal

	Commodity *Commodity

	// TotalIndex is the dense zero-based ordinal assigned after the full
	// contract list is sorted by full code. Stable for the lifetime of
	// the loaded catalog.
	TotalIndex int
}

// NewContract creates a contract for the given commodity coordinates.
func NewContract(code, name, exchange, product string) *Contract {
	return &Contract{
		Code:     code,
		Name:     name,
		Exchange: exchange,
		Product:  product,
	}
}

// FullCode returns the exchange-qualified code, e.g. "SHFE.rb2405".
func (c *Contract) FullCode() string {
	return c.Exchange + "." + c.Code
}

// FullAltCode returns the exchange-qualified alternate code.
func (c *Contract) FullAltCode() string {
	return c.Exchange + "." + c.AltCode
}

// HasAltCode reports whether the alternate code differs from the code.
func (c *Contract) HasAltCode() bool {
	return c.AltCode != "" && c.AltCode != c.Code
}

// IsValidOn reports whether the contract is tradable on the given YYYYMMDD
// date. A zero date means no constraint, as does a zero bound.
func (c *Contract) IsValidOn(date uint32) bool {
	if date == 0 {
		return true
	}

	if c.OpenDate != 0 && date < c.OpenDate {
		return false
	}

	if c.ExpireDate != 0 && date > c.ExpireDate {
		return false
	}

	return true
}
