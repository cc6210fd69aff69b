package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-refdata/pkg/errors"
)

// The configuration documents are hierarchical YAML maps. Optional scalar
// fields that need presence detection (has/absent semantics with non-zero
// defaults) are pointers.

// SessionConfig is one entry of the sessions document, keyed by session id.
type SessionConfig struct {
	Name   string `yaml:"name" json:"name" jsonschema:"title=Name,description=Display name of the session"`
	Offset int32  `yaml:"offset" json:"offset" jsonschema:"title=Offset,description=Signed offset in minutes shifting the session into its trading date"`
	// Auction is the single-window legacy form; Auctions the multi-window one.
	Auction  *TimeRange  `yaml:"auction,omitempty" json:"auction,omitempty" jsonschema:"title=Auction,description=Single call-auction window"`
	Auctions []TimeRange `yaml:"auctions,omitempty" json:"auctions,omitempty" jsonschema:"title=Auctions,description=Call-auction windows"`
	Sections []TimeRange `yaml:"sections" json:"sections" jsonschema:"title=Sections,description=Ordered trading sections as HHMM from/to pairs"`
}

// SessionsDocument maps session id to its configuration.
type SessionsDocument map[string]SessionConfig

// CommodityConfig is one product entry of the commodities document. The
// same shape doubles as the inline "rules" block of a contract entry, which
// auto-creates a synthetic one-contract commodity.
type CommodityConfig struct {
	Name      string   `yaml:"name" json:"name" jsonschema:"title=Name"`
	Session   string   `yaml:"session" json:"session" jsonschema:"title=Session,description=Id of the trading session the product follows" validate:"required"`
	Holiday   string   `yaml:"holiday" json:"holiday" jsonschema:"title=Holiday,description=Id of the holiday template the product follows"`
	PriceTick float64  `yaml:"pricetick" json:"pricetick" jsonschema:"title=Price Tick"`
	VolScale  uint32   `yaml:"volscale" json:"volscale" jsonschema:"title=Volume Scale"`
	Category  *uint32  `yaml:"category,omitempty" json:"category,omitempty" jsonschema:"title=Category,description=Contract category; future when absent"`
	CoverMode uint32   `yaml:"covermode" json:"covermode" jsonschema:"title=Cover Mode"`
	PriceMode uint32   `yaml:"pricemode" json:"pricemode" jsonschema:"title=Price Mode"`
	TradeMode *uint32  `yaml:"trademode,omitempty" json:"trademode,omitempty" jsonschema:"title=Trading Mode,description=Allowed position directions; both when absent"`
	LotsTick  *float64 `yaml:"lotstick,omitempty" json:"lotstick,omitempty" jsonschema:"title=Lots Tick"`
	MinLots   *float64 `yaml:"minlots,omitempty" json:"minlots,omitempty" jsonschema:"title=Minimum Lots"`
}

// CommoditiesDocument maps exchange to product id to configuration.
type CommoditiesDocument map[string]map[string]CommodityConfig

// ContractConfig is one instrument entry of the contracts document. Either
// Product (resolving an existing commodity) or Rules (auto-creating one)
// must be present; entries with neither are skipped.
type ContractConfig struct {
	Name     string           `yaml:"name" json:"name" jsonschema:"title=Name"`
	Exchange string           `yaml:"exchg,omitempty" json:"exchg,omitempty" jsonschema:"title=Exchange,description=Exchange of the owning commodity when it differs from the enclosing key"`
	Product  string           `yaml:"product,omitempty" json:"product,omitempty" jsonschema:"title=Product,description=Id of the owning commodity"`
	Rules    *CommodityConfig `yaml:"rules,omitempty" json:"rules,omitempty" jsonschema:"title=Rules,description=Inline commodity definition for standalone contracts"`
	AltCode  string           `yaml:"altcode,omitempty" json:"altcode,omitempty" jsonschema:"title=Alternate Code"`

	MaxMarketQty *uint32 `yaml:"maxmarketqty,omitempty" json:"maxmarketqty,omitempty" jsonschema:"title=Max Market Qty,description=Defaults to 1000000"`
	MaxLimitQty  *uint32 `yaml:"maxlimitqty,omitempty" json:"maxlimitqty,omitempty" jsonschema:"title=Max Limit Qty,description=Defaults to 1000000"`
	MinMarketQty *uint32 `yaml:"minmarketqty,omitempty" json:"minmarketqty,omitempty" jsonschema:"title=Min Market Qty,description=Defaults to 1"`
	MinLimitQty  *uint32 `yaml:"minlimitqty,omitempty" json:"minlimitqty,omitempty" jsonschema:"title=Min Limit Qty,description=Defaults to 1"`

	OpenDate   uint32 `yaml:"opendate,omitempty" json:"opendate,omitempty" jsonschema:"title=Open Date,description=First valid date as YYYYMMDD; 0 means unbounded"`
	ExpireDate uint32 `yaml:"expiredate,omitempty" json:"expiredate,omitempty" jsonschema:"title=Expire Date,description=Last valid date as YYYYMMDD; 0 means unbounded"`

	LongMarginRatio  float64 `yaml:"longmarginratio,omitempty" json:"longmarginratio,omitempty" jsonschema:"title=Long Margin Ratio"`
	ShortMarginRatio float64 `yaml:"shortmarginratio,omitempty" json:"shortmarginratio,omitempty" jsonschema:"title=Short Margin Ratio"`
}

// ContractsDocument maps exchange to contract code to configuration.
type ContractsDocument map[string]map[string]ContractConfig

// HolidaysDocument maps holiday template id to its YYYYMMDD holiday dates.
type HolidaysDocument map[string][]uint32

// Validate validates the CommodityConfig struct.
func (c *CommodityConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid commodity config", err)
	}

	return nil
}
