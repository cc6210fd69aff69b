package catalog

import (
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-refdata/internal/types"
	"github.com/rxtech-lab/argo-refdata/pkg/errors"
)

// LoadSessions ingests the sessions document. A session whose sections
// array is missing is still registered, just without trading sections.
func (c *Catalog) LoadSessions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("Trading sessions configuration file not readable",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigNotFound, err, "sessions file %s not readable", path)
	}

	var doc types.SessionsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		c.log.Error("Loading sessions config file failed",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigParseFailed, err, "sessions file %s not parseable", path)
	}

	for id, cfg := range doc {
		sInfo := types.NewSession(id, cfg.Name, cfg.Offset)

		if cfg.Auction != nil {
			sInfo.AddAuctionTime(cfg.Auction.From, cfg.Auction.To)
		} else {
			for _, a := range cfg.Auctions {
				sInfo.AddAuctionTime(a.From, a.To)
			}
		}

		for _, sec := range cfg.Sections {
			sInfo.AddTradingSection(sec.From, sec.To)
		}

		c.sessions[id] = sInfo
	}

	c.log.Info("Sessions configuration file loaded",
		zap.String("path", path), zap.Int("sessions", len(c.sessions)))

	return nil
}

// buildCommodity turns a validated config entry into a commodity and wires
// its session reference. The session may be unresolved when the sessions
// document was not loaded; that is tolerated structurally.
func (c *Catalog) buildCommodity(pid, exchg string, cfg *types.CommodityConfig) *types.Commodity {
	commInfo := types.NewCommodity(pid, cfg.Name, exchg, cfg.Session, cfg.Holiday)

	commInfo.PriceTick = decimal.NewFromFloat(cfg.PriceTick)
	commInfo.VolScale = cfg.VolScale

	if cfg.Category != nil {
		commInfo.Category = types.ContractCategory(*cfg.Category)
	} else {
		commInfo.Category = types.CategoryFuture
	}

	commInfo.CoverMode = types.CoverMode(cfg.CoverMode)
	commInfo.PriceMode = types.PriceMode(cfg.PriceMode)

	if cfg.TradeMode != nil {
		commInfo.TradingMode = types.TradingMode(*cfg.TradeMode)
	} else {
		commInfo.TradingMode = types.TradingModeBoth
	}

	lotsTick := 1.0
	minLots := 1.0

	if cfg.LotsTick != nil {
		lotsTick = *cfg.LotsTick
	}

	if cfg.MinLots != nil {
		minLots = *cfg.MinLots
	}

	commInfo.LotsTick = decimal.NewFromFloat(lotsTick)
	commInfo.MinLots = decimal.NewFromFloat(minLots)

	if sInfo, ok := c.sessions[cfg.Session]; ok {
		commInfo.Session = sInfo
	}

	return commInfo
}

// registerCommodity links a commodity into the flat list and both product
// indices.
func (c *Catalog) registerCommodity(commInfo *types.Commodity) {
	c.commList = append(c.commList, commInfo)
	c.pidMap[commInfo.Product] = append(c.pidMap[commInfo.Product], commInfo)
	c.fullPidMap[commInfo.FullID()] = commInfo
}

// LoadCommodities ingests the commodities document. Entries without a
// session id are unusable and skipped with a warning.
func (c *Catalog) LoadCommodities(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("Commodities configuration file not readable",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigNotFound, err, "commodities file %s not readable", path)
	}

	var doc types.CommoditiesDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		c.log.Error("Loading commodities config file failed",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigParseFailed, err, "commodities file %s not parseable", path)
	}

	for exchg, products := range doc {
		for pid, cfg := range products {
			if err := cfg.Validate(); err != nil {
				c.log.Warn("No session configured, commodity skipped",
					zap.String("exchange", exchg), zap.String("product", pid), zap.Error(err))

				continue
			}

			commInfo := c.buildCommodity(pid, exchg, &cfg)
			c.registerCommodity(commInfo)

			set, ok := c.sessionComms[cfg.Session]
			if !ok {
				set = make(map[string]struct{})
				c.sessionComms[cfg.Session] = set
			}

			set[commInfo.FullID()] = struct{}{}
		}
	}

	c.log.Info("Commodities configuration file loaded",
		zap.String("path", path), zap.Int("commodities", len(c.commList)))

	return nil
}

// resolveContractCommodity finds or auto-creates the commodity owning a
// contract entry. An explicit product field resolves an already loaded
// commodity; an inline rules block creates a synthetic one-contract
// commodity, defaulting its session when the rules name none. Entries with
// neither stay unresolved and are skipped by the caller.
func (c *Catalog) resolveContractCommodity(exchg, code string, cfg *types.ContractConfig) (*types.Commodity, string) {
	entryExchg := cfg.Exchange
	if entryExchg == "" {
		entryExchg = exchg
	}

	if cfg.Product != "" {
		commInfo, err := c.CommodityByExchange(entryExchg, cfg.Product)
		if err != nil {
			return nil, cfg.Product
		}

		return commInfo, cfg.Product
	}

	if cfg.Rules == nil {
		return nil, ""
	}

	rules := *cfg.Rules
	if rules.Session == "" {
		rules.Session = DefaultSessionID
	}

	if rules.Name == "" {
		rules.Name = cfg.Name
	}

	commInfo := c.buildCommodity(code, entryExchg, &rules)
	c.registerCommodity(commInfo)

	c.log.Debug("Commodity automatically added from contract rules",
		zap.String("commodity", commInfo.FullID()))

	return commInfo, code
}

// LoadContracts ingests the contracts document and, once all exchanges are
// in, sorts the total list by full code and assigns dense total indices.
func (c *Catalog) LoadContracts(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("Contracts configuration file not readable",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigNotFound, err, "contracts file %s not readable", path)
	}

	var doc types.ContractsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		c.log.Error("Loading contracts config file failed",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigParseFailed, err, "contracts file %s not parseable", path)
	}

	for exchg, codes := range doc {
		for code, cfg := range codes {
			commInfo, pid := c.resolveContractCommodity(exchg, code, &cfg)
			if commInfo == nil {
				c.log.Warn("Commodity not found, contract skipped",
					zap.String("exchange", exchg), zap.String("product", pid), zap.String("code", code))

				continue
			}

			cInfo := types.NewContract(code, cfg.Name, commInfo.Exchange, pid)

			if cfg.AltCode != "" {
				cInfo.AltCode = cfg.AltCode
			} else {
				cInfo.AltCode = code
			}

			cInfo.Commodity = commInfo

			cInfo.MaxMarketQty = 1000000
			cInfo.MaxLimitQty = 1000000
			cInfo.MinMarketQty = 1
			cInfo.MinLimitQty = 1

			if cfg.MaxMarketQty != nil {
				cInfo.MaxMarketQty = *cfg.MaxMarketQty
			}

			if cfg.MaxLimitQty != nil {
				cInfo.MaxLimitQty = *cfg.MaxLimitQty
			}

			if cfg.MinMarketQty != nil {
				cInfo.MinMarketQty = *cfg.MinMarketQty
			}

			if cfg.MinLimitQty != nil {
				cInfo.MinLimitQty = *cfg.MinLimitQty
			}

			cInfo.OpenDate = cfg.OpenDate
			cInfo.ExpireDate = cfg.ExpireDate

			cInfo.LongMarginRatio = decimal.NewFromFloat(cfg.LongMarginRatio)
			cInfo.ShortMarginRatio = decimal.NewFromFloat(cfg.ShortMarginRatio)

			commInfo.AddCode(code)
			c.codeList = append(c.codeList, cInfo)

			c.codeMap[cInfo.Code] = append(c.codeMap[cInfo.Code], cInfo)
			c.fullCodeMap[cInfo.FullCode()] = cInfo

			if cInfo.HasAltCode() {
				c.codeMap[cInfo.AltCode] = append(c.codeMap[cInfo.AltCode], cInfo)
				c.fullCodeMap[cInfo.FullAltCode()] = cInfo
			}
		}
	}

	c.log.Info("Contracts configuration file loaded",
		zap.String("path", path), zap.Int("contracts", len(c.codeList)))

	sort.Slice(c.codeList, func(i, j int) bool {
		return c.codeList[i].FullCode() < c.codeList[j].FullCode()
	})

	for idx, cInfo := range c.codeList {
		cInfo.TotalIndex = idx
	}

	return nil
}

// LoadHolidays ingests the holidays document. Template values that are not
// arrays are skipped; templates are created on demand so several loads can
// extend the same template.
func (c *Catalog) LoadHolidays(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("Holidays configuration file not readable",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigNotFound, err, "holidays file %s not readable", path)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		c.log.Error("Loading holidays config file failed",
			zap.String("path", path), zap.Error(err))

		return errors.Wrapf(errors.ErrCodeConfigParseFailed, err, "holidays file %s not parseable", path)
	}

	for hid, node := range doc {
		if node.Kind != yaml.SequenceNode {
			c.log.Warn("Holiday template is not an array, skipped", zap.String("template", hid))

			continue
		}

		var dates []uint32
		if err := node.Decode(&dates); err != nil {
			c.log.Warn("Holiday template not decodable, skipped",
				zap.String("template", hid), zap.Error(err))

			continue
		}

		tpl := c.Template(hid)
		for _, date := range dates {
			tpl.AddHoliday(date)
		}
	}

	c.log.Info("Holidays configuration file loaded",
		zap.String("path", path), zap.Int("templates", len(c.templates)))

	return nil
}

// Template returns the holiday template with the given id, creating an
// empty one when absent.
func (c *Catalog) Template(hid string) *types.HolidayTemplate {
	tpl, ok := c.templates[hid]
	if !ok {
		tpl = types.NewHolidayTemplate(hid)
		c.templates[hid] = tpl
	}

	return tpl
}
