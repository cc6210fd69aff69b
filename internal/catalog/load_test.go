package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-refdata/internal/types"
	"github.com/rxtech-lab/argo-refdata/pkg/errors"
)

const sessionsFixture = `
d:
  name: Day
  offset: 0
  sections:
    - {from: 900, to: 1130}
    - {from: 1330, to: 1500}
fn:
  name: FutureNight
  offset: 300
  auction: {from: 2059, to: 2100}
  sections:
    - {from: 2100, to: 2300}
    - {from: 900, to: 1015}
    - {from: 1030, to: 1130}
    - {from: 1330, to: 1500}
off:
  name: Offshore
  offset: -300
  auctions:
    - {from: 1955, to: 2000}
    - {from: 855, to: 900}
  sections:
    - {from: 2000, to: 400}
ALLDAY:
  name: AllDay
  offset: 0
  sections:
    - {from: 0, to: 2400}
nosec:
  name: NoSections
  offset: 0
`

const commoditiesFixture = `
SHFE:
  rb:
    name: Rebar
    session: fn
    holiday: CHINA
    pricetick: 1
    volscale: 10
  broken:
    name: NoSession
    pricetick: 1
CFFEX:
  IF:
    name: IndexFuture
    session: d
    holiday: CHINA
    pricetick: 0.2
    volscale: 300
    trademode: 1
    lotstick: 1
    minlots: 1
NYMEX:
  cl:
    name: CrudeOil
    session: off
    holiday: US
    pricetick: 0.01
    volscale: 1000
BINANCE:
  btc:
    name: Bitcoin
    session: ALLDAY
    holiday: CRYPTO
    pricetick: 0.1
    volscale: 1
`

const contractsFixture = `
SHFE:
  rb2405:
    name: rb2405
    product: rb
    opendate: 20230515
    expiredate: 20240515
    maxmarketqty: 500
    longmarginratio: 0.09
    shortmarginratio: 0.09
  rb2410:
    name: rb2410
    product: rb
    altcode: RB2410
    opendate: 20231016
    expiredate: 20241015
  ag2406:
    name: ag2406
    product: ag
  xx2406:
    name: xx2406
    product: rb
    opendate: 20240101
    expiredate: 20240630
CFFEX:
  IF2403:
    name: IF2403
    product: IF
    opendate: 20230818
    expiredate: 20240315
  xx2406:
    name: xx2406
    product: IF
    opendate: 20240701
    expiredate: 20241231
NYMEX:
  CL2406:
    name: CL2406
    product: cl
    opendate: 20230601
    expiredate: 20240520
BINANCE:
  BTCUSDT:
    name: BTCUSDT
    product: btc
  ETHUSDT:
    name: ETHUSDT
    rules:
      pricetick: 0.01
      volscale: 1
      holiday: CRYPTO
`

const holidaysFixture = `
CHINA:
  - 20240101
  - 20240404
  - 20240405
BADTPL: 42
`

// writeFixture writes a document into dir and returns its path.
func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}

	return path
}

// newFixtureCatalog builds a catalog from the full fixture set.
func newFixtureCatalog(t *testing.T) *Catalog {
	t.Helper()

	dir := t.TempDir()
	c := NewCatalog(nil)

	if err := c.LoadSessions(writeFixture(t, dir, "sessions.yaml", sessionsFixture)); err != nil {
		t.Fatalf("LoadSessions: %v", err)
	}

	if err := c.LoadCommodities(writeFixture(t, dir, "commodities.yaml", commoditiesFixture)); err != nil {
		t.Fatalf("LoadCommodities: %v", err)
	}

	if err := c.LoadContracts(writeFixture(t, dir, "contracts.yaml", contractsFixture)); err != nil {
		t.Fatalf("LoadContracts: %v", err)
	}

	if err := c.LoadHolidays(writeFixture(t, dir, "holidays.yaml", holidaysFixture)); err != nil {
		t.Fatalf("LoadHolidays: %v", err)
	}

	return c
}

type LoadTestSuite struct {
	suite.Suite

	catalog *Catalog
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadTestSuite))
}

func (suite *LoadTestSuite) SetupTest() {
	suite.catalog = newFixtureCatalog(suite.T())
}

func (suite *LoadTestSuite) TestLoadSessions() {
	sInfo, err := suite.catalog.Session("fn")
	suite.NoError(err)
	suite.Equal("FutureNight", sInfo.Name)
	suite.Equal(int32(300), sInfo.OffsetMins)
	suite.Len(sInfo.Sections, 4)
	suite.Len(sInfo.Auctions, 1)
	suite.Equal(uint32(2100), sInfo.OpenTime())
	suite.Equal(uint32(1500), sInfo.CloseTime())

	// multi-window auction form
	offInfo, err := suite.catalog.Session("off")
	suite.NoError(err)
	suite.Len(offInfo.Auctions, 2)

	// a session without sections still registers
	noSec, err := suite.catalog.Session("nosec")
	suite.NoError(err)
	suite.Empty(noSec.Sections)

	suite.Len(suite.catalog.AllSessions(), 5)
}

func (suite *LoadTestSuite) TestLoadSessionsMissingFile() {
	c := NewCatalog(nil)
	err := c.LoadSessions(filepath.Join(suite.T().TempDir(), "absent.yaml"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeConfigNotFound))
}

func (suite *LoadTestSuite) TestLoadSessionsUnparseable() {
	dir := suite.T().TempDir()
	path := writeFixture(suite.T(), dir, "bad.yaml", "d: [unclosed")

	c := NewCatalog(nil)
	err := c.LoadSessions(path)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeConfigParseFailed))
}

func (suite *LoadTestSuite) TestLoadCommodities() {
	commInfo, err := suite.catalog.Commodity("SHFE.rb")
	suite.NoError(err)
	suite.Equal("Rebar", commInfo.Name)
	suite.Equal("fn", commInfo.SessionID)
	suite.Equal("CHINA", commInfo.HolidayID)
	suite.NotNil(commInfo.Session)
	suite.Equal("fn", commInfo.Session.ID)
	suite.True(commInfo.PriceTick.Equal(decimal.NewFromInt(1)))
	suite.Equal(uint32(10), commInfo.VolScale)

	// defaults when fields are absent
	suite.Equal(types.CategoryFuture, commInfo.Category)
	suite.Equal(types.TradingModeBoth, commInfo.TradingMode)
	suite.True(commInfo.LotsTick.Equal(decimal.NewFromInt(1)))
	suite.True(commInfo.MinLots.Equal(decimal.NewFromInt(1)))

	ifInfo, err := suite.catalog.CommodityByExchange("CFFEX", "IF")
	suite.NoError(err)
	suite.Equal(types.TradingModeLongOnly, ifInfo.TradingMode)
	suite.True(ifInfo.PriceTick.Equal(decimal.NewFromFloat(0.2)))
}

func (suite *LoadTestSuite) TestLoadCommoditiesSkipsEntryWithoutSession() {
	_, err := suite.catalog.Commodity("SHFE.broken")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeCommodityNotFound))
}

func (suite *LoadTestSuite) TestSessionCommodities() {
	suite.Equal([]string{"SHFE.rb"}, suite.catalog.SessionCommodities("fn"))
	suite.Equal([]string{"CFFEX.IF"}, suite.catalog.SessionCommodities("d"))
	suite.Nil(suite.catalog.SessionCommodities("unknown"))
}

func (suite *LoadTestSuite) TestLoadContracts() {
	cInfo, err := suite.catalog.Contract("rb2405", "SHFE", 0)
	suite.NoError(err)
	suite.Equal("SHFE.rb2405", cInfo.FullCode())
	suite.Equal(uint32(20230515), cInfo.OpenDate)
	suite.Equal(uint32(20240515), cInfo.ExpireDate)
	suite.NotNil(cInfo.Commodity)
	suite.Equal("SHFE.rb", cInfo.Commodity.FullID())

	// explicit quantity limit beside defaulted ones
	suite.Equal(uint32(500), cInfo.MaxMarketQty)
	suite.Equal(uint32(1000000), cInfo.MaxLimitQty)
	suite.Equal(uint32(1), cInfo.MinMarketQty)
	suite.Equal(uint32(1), cInfo.MinLimitQty)
	suite.True(cInfo.LongMarginRatio.Equal(decimal.NewFromFloat(0.09)))

	// alt code defaults to code
	suite.Equal("rb2405", cInfo.AltCode)
}

func (suite *LoadTestSuite) TestLoadContractsAltCodeIndexing() {
	byAlt, err := suite.catalog.Contract("RB2410", "SHFE", 0)
	suite.NoError(err)
	suite.Equal("SHFE.rb2410", byAlt.FullCode())

	bare, err := suite.catalog.Contract("RB2410", "", 0)
	suite.NoError(err)
	suite.Same(byAlt, bare)
}

func (suite *LoadTestSuite) TestLoadContractsSkipsUnresolvable() {
	_, err := suite.catalog.Contract("ag2406", "SHFE", 0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeContractNotFound))
}

func (suite *LoadTestSuite) TestLoadContractsRulesCreatesCommodity() {
	cInfo, err := suite.catalog.Contract("ETHUSDT", "BINANCE", 0)
	suite.NoError(err)
	suite.NotNil(cInfo.Commodity)
	suite.Equal("BINANCE.ETHUSDT", cInfo.Commodity.FullID())
	suite.Equal(DefaultSessionID, cInfo.Commodity.SessionID)
	suite.NotNil(cInfo.Commodity.Session)
	suite.True(cInfo.Commodity.Session.Is24Hour())
	suite.Equal("CRYPTO", cInfo.Commodity.HolidayID)

	commInfo, err := suite.catalog.Commodity("BINANCE.ETHUSDT")
	suite.NoError(err)
	suite.Equal([]string{"ETHUSDT"}, commInfo.Codes)
}

func (suite *LoadTestSuite) TestTotalIndexAssignment() {
	all := suite.catalog.Contracts(ContractFilter{})
	suite.Len(all, 8)

	for i, cInfo := range all {
		suite.Equal(i, cInfo.TotalIndex)
		if i > 0 {
			suite.Less(all[i-1].FullCode(), cInfo.FullCode())
		}
	}

	first, err := suite.catalog.ContractByIndex(0)
	suite.NoError(err)
	suite.Same(all[0], first)

	_, err = suite.catalog.ContractByIndex(len(all))
	suite.Error(err)
}

func (suite *LoadTestSuite) TestLoadHolidays() {
	tpl := suite.catalog.Template("CHINA")
	suite.True(tpl.IsHoliday(20240101))
	suite.True(tpl.IsHoliday(20240404))
	suite.False(tpl.IsHoliday(20240102))

	// a non-array template value is skipped
	_, ok := suite.catalog.templates["BADTPL"]
	suite.False(ok)
}
