package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ContractTestSuite struct {
	suite.Suite
}

func TestContractSuite(t *testing.T) {
	suite.Run(t, new(ContractTestSuite))
}

func (suite *ContractTestSuite) TestFullCodes() {
	c := NewContract("rb2405", "rb2405", "SHFE", "rb")
	c.AltCode = "RB2405"

	suite.Equal("SHFE.rb2405", c.FullCode())
	suite.Equal("SHFE.RB2405", c.FullAltCode())
	suite.True(c.HasAltCode())

	c.AltCode = "rb2405"
	suite.False(c.HasAltCode())
}

func (suite *ContractTestSuite) TestIsValidOn() {
	tests := []struct {
		name     string
		open     uint32
		expire   uint32
		date     uint32
		expected bool
	}{
		{name: "zero date matches anything", open: 20230515, expire: 20240515, date: 0, expected: true},
		{name: "inside window", open: 20230515, expire: 20240515, date: 20240102, expected: true},
		{name: "before open", open: 20230515, expire: 20240515, date: 20230101, expected: false},
		{name: "after expire", open: 20230515, expire: 20240515, date: 20240601, expected: false},
		{name: "open boundary", open: 20230515, expire: 20240515, date: 20230515, expected: true},
		{name: "expire boundary", open: 20230515, expire: 20240515, date: 20240515, expected: true},
		{name: "unbounded both sides", open: 0, expire: 0, date: 20990101, expected: true},
		{name: "unbounded expire", open: 20230515, expire: 0, date: 20990101, expected: true},
		{name: "unbounded open", open: 0, expire: 20240515, date: 20220101, expected: true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			c := NewContract("x", "x", "EX", "p")
			c.OpenDate = tc.open
			c.ExpireDate = tc.expire
			suite.Equal(tc.expected, c.IsValidOn(tc.date))
		})
	}
}

func (suite *ContractTestSuite) TestCommodityFullID() {
	comm := NewCommodity("rb", "Rebar", "SHFE", "fn", "CHINA")
	suite.Equal("SHFE.rb", comm.FullID())

	comm.AddCode("rb2405")
	comm.AddCode("rb2410")
	suite.Equal([]string{"rb2405", "rb2410"}, comm.Codes)
}

func (suite *ContractTestSuite) TestHolidayTemplate() {
	tpl := NewHolidayTemplate("CHINA")
	tpl.AddHoliday(20240101)

	suite.True(tpl.IsHoliday(20240101))
	suite.False(tpl.IsHoliday(20240102))

	suite.Equal(uint32(0), tpl.CurrentTradingDate())
	tpl.SetCurrentTradingDate(20240108)
	suite.Equal(uint32(20240108), tpl.CurrentTradingDate())
}

func (suite *ContractTestSuite) TestCommodityConfigValidate() {
	cfg := CommodityConfig{
		Name:      "Rebar",
		Session:   "fn",
		Holiday:   "CHINA",
		PriceTick: 1,
		VolScale:  10,
	}
	suite.NoError(cfg.Validate())

	missing := CommodityConfig{Name: "NoSession", PriceTick: 1}
	err := missing.Validate()
	suite.Error(err)
	suite.Contains(err.Error(), "invalid commodity config")
}
