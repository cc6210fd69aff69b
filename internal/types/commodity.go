package types

import (
	"github.com/shopspring/decimal"
)

// Commodity is one tradable product on one exchange, bound to a trading
// session and a holiday template. It owns the list of contract codes that
// belong to it; contracts hold a back-reference.
type Commodity struct {
	Product   string
	Name      string
	Exchange  string
	SessionID string
	HolidayID string

	PriceTick decimal.Decimal
	VolScale  uint32
	LotsTick  decimal.Decimal
	MinLots   decimal.Decimal

	Category    ContractCategory
	CoverMode   CoverMode
	PriceMode   PriceMode
	TradingMode TradingMode

	// Session is resolved at load time and may be nil when the session
	// document was not loaded; queries then degrade to "unknown".
	Session *Session

	Codes []string
}

// NewCommodity creates a commodity keyed by product and exchange.
func NewCommodity(product, name, exchange, sessionID, holidayID string) *Commodity {
	return &Commodity{
		Product:   product,
		Name:      name,
		Exchange:  exchange,
		SessionID: sessionID,
		HolidayID: holidayID,
	}
}

// FullID returns the exchange-qualified product key, e.g. "SHFE.rb".
func (c *Commodity) FullID() string {
	return c.Exchange + "." + c.Product
}

// AddCode records a contract code as belonging to this commodity.
func (c *Commodity) AddCode(code string) {
	c.Codes = append(c.Codes, code)
}
