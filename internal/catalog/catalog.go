// Package catalog holds the in-memory reference-data catalog: trading
// sessions, commodities, contracts and holiday templates, with the
// trading-date arithmetic built on top of them. The catalog is built once
// by the four loaders and is read-only afterwards, except for the
// per-template cached current trading date.
package catalog

import (
	"sort"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-refdata/internal/logger"
	"github.com/rxtech-lab/argo-refdata/internal/types"
	"github.com/rxtech-lab/argo-refdata/pkg/errors"
)

const (
	// DefaultHolidayTemplate is used when a query addresses a session id
	// directly rather than a product.
	DefaultHolidayTemplate = "CHINA"

	// DefaultSessionID is assigned to commodities auto-created from a
	// contract's inline rules block when the rules name no session.
	DefaultSessionID = "ALLDAY"
)

// Catalog is the reference-data store. Loading is single-threaded; once
// loaded, all queries are safe for concurrent callers.
type Catalog struct {
	log *logger.Logger

	sessions map[string]*types.Session

	commList   []*types.Commodity
	pidMap     map[string][]*types.Commodity // bare product id, one per exchange
	fullPidMap map[string]*types.Commodity   // exchange.product

	codeList    []*types.Contract            // total-index order after load
	codeMap     map[string][]*types.Contract // bare code / alt code
	fullCodeMap map[string]*types.Contract   // exchange.code / exchange.altcode

	sessionComms map[string]map[string]struct{} // session id -> full product ids

	templates map[string]*types.HolidayTemplate
}

// NewCatalog creates an empty catalog. A nil logger falls back to a no-op
// logger so the catalog is usable in tests without wiring one.
func NewCatalog(log *logger.Logger) *Catalog {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Catalog{
		log:          log,
		sessions:     make(map[string]*types.Session),
		pidMap:       make(map[string][]*types.Commodity),
		fullPidMap:   make(map[string]*types.Commodity),
		codeMap:      make(map[string][]*types.Contract),
		fullCodeMap:  make(map[string]*types.Contract),
		sessionComms: make(map[string]map[string]struct{}),
		templates:    make(map[string]*types.HolidayTemplate),
	}
}

// ContractFilter narrows contract enumeration. Empty options match all.
type ContractFilter struct {
	Exchange optional.Option[string]
	ValidOn  optional.Option[uint32]
}

func (f ContractFilter) matches(c *types.Contract) bool {
	if f.Exchange.IsSome() && c.Exchange != f.Exchange.Unwrap() {
		return false
	}

	if f.ValidOn.IsSome() && !c.IsValidOn(f.ValidOn.Unwrap()) {
		return false
	}

	return true
}

// Commodity resolves a commodity by its exchange-qualified product key.
func (c *Catalog) Commodity(fullPid string) (*types.Commodity, error) {
	commInfo, ok := c.fullPidMap[fullPid]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeCommodityNotFound, "commodity %s not found", fullPid)
	}

	return commInfo, nil
}

// CommodityByExchange resolves a commodity by exchange and bare product id.
func (c *Catalog) CommodityByExchange(exchg, pid string) (*types.Commodity, error) {
	return c.Commodity(exchg + "." + pid)
}

// CommoditiesByProduct returns every commodity sharing a bare product id,
// one per exchange that lists it.
func (c *Catalog) CommoditiesByProduct(pid string) []*types.Commodity {
	return c.pidMap[pid]
}

// AllCommodities returns every loaded commodity in load order, including
// the synthetic ones created from contract rules blocks.
func (c *Catalog) AllCommodities() []*types.Commodity {
	return c.commList
}

// Contract resolves a contract by code. With an empty exchange all
// variants sharing the bare code (or alt code) are searched and the first
// one valid on the reference date wins; with an exchange given the lookup
// goes straight to the full-code index. A zero date means no constraint.
func (c *Catalog) Contract(code, exchg string, date uint32) (*types.Contract, error) {
	if exchg == "" {
		for _, cInfo := range c.codeMap[code] {
			if cInfo.IsValidOn(date) {
				return cInfo, nil
			}
		}

		return nil, errors.Newf(errors.ErrCodeContractNotFound, "contract %s not found", code)
	}

	fullCode := exchg + "." + code
	if cInfo, ok := c.fullCodeMap[fullCode]; ok && cInfo.IsValidOn(date) {
		return cInfo, nil
	}

	return nil, errors.Newf(errors.ErrCodeContractNotFound, "contract %s not found", fullCode)
}

// ContractByIndex returns the contract with the given total index.
func (c *Catalog) ContractByIndex(idx int) (*types.Contract, error) {
	if idx < 0 || idx >= len(c.codeList) {
		return nil, errors.Newf(errors.ErrCodeContractNotFound, "contract index %d out of range", idx)
	}

	return c.codeList[idx], nil
}

// Contracts enumerates contracts matching the filter in total-index order.
func (c *Catalog) Contracts(filter ContractFilter) []*types.Contract {
	var out []*types.Contract

	for _, cInfo := range c.codeList {
		if filter.matches(cInfo) {
			out = append(out, cInfo)
		}
	}

	return out
}

// ContractCount counts contracts matching the filter without materializing
// a result list.
func (c *Catalog) ContractCount(filter ContractFilter) int {
	count := 0

	for _, cInfo := range c.codeList {
		if filter.matches(cInfo) {
			count++
		}
	}

	return count
}

// Session resolves a session by id.
func (c *Catalog) Session(sid string) (*types.Session, error) {
	sInfo, ok := c.sessions[sid]
	if !ok {
		return nil, errors.Newf(errors.ErrCodeSessionNotFound, "session %s not found", sid)
	}

	return sInfo, nil
}

// AllSessions returns every loaded session, sorted by id.
func (c *Catalog) AllSessions() []*types.Session {
	out := make([]*types.Session, 0, len(c.sessions))
	for _, sInfo := range c.sessions {
		out = append(out, sInfo)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// SessionByCode resolves the session a contract trades in, via its
// commodity.
func (c *Catalog) SessionByCode(code, exchg string) (*types.Session, error) {
	cInfo, err := c.Contract(code, exchg, 0)
	if err != nil {
		return nil, err
	}

	if cInfo.Commodity == nil || cInfo.Commodity.Session == nil {
		return nil, errors.Newf(errors.ErrCodeNoSessionBound, "contract %s has no session bound", cInfo.FullCode())
	}

	return cInfo.Commodity.Session, nil
}

// SessionCommodities returns the full product keys of every commodity that
// follows the given session, sorted for stable iteration.
func (c *Catalog) SessionCommodities(sid string) []string {
	set, ok := c.sessionComms[sid]
	if !ok {
		return nil
	}

	out := make([]string, 0, len(set))
	for pid := range set {
		out = append(out, pid)
	}

	sort.Strings(out)

	return out
}

// templateByProduct translates an exchange-qualified product key into the
// id of its holiday template. Unknown products yield the empty id, which
// holiday checks treat permissively.
func (c *Catalog) templateByProduct(fullPid string) string {
	commInfo, ok := c.fullPidMap[fullPid]
	if !ok {
		return ""
	}

	return commInfo.HolidayID
}
