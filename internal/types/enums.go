package types

// ContractCategory classifies what kind of instrument a commodity covers.
type ContractCategory uint32

const (
	CategoryStock ContractCategory = iota
	CategoryFuture
	CategoryFutureOption
	CategoryCombination
	CategorySpot
	CategorySpotOption
	CategoryETFOption
)

// CoverMode describes how closing positions are matched against open ones.
type CoverMode uint32

const (
	CoverModeOpenCover CoverMode = iota
	CoverModeCoverToday
	CoverModeUnified
)

// PriceMode describes which order price types an exchange accepts.
type PriceMode uint32

const (
	PriceModeBoth PriceMode = iota
	PriceModeLimit
	PriceModeMarket
)

// TradingMode describes which position directions are allowed.
type TradingMode uint32

const (
	TradingModeBoth TradingMode = iota
	TradingModeLongOnly
	TradingModeNone
)
