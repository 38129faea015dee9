package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/report"
	"github.com/rustyeddy/lotsize/risk"
)

type calcResponse struct {
	Currency    string           `json:"currency"`
	Calculation risk.Calculation `json:"calculation"`
	Decision    risk.Decision    `json:"decision"`
	Report      string           `json:"report"`
	Copy        string           `json:"copy"`
}

func (s *Server) calculate(in risk.Inputs) calcResponse {
	calc := risk.Calculate(in, s.cfg.MarginRate)
	decision := risk.Evaluate(s.cfg.Policy, calc)
	s.metrics.observe(calc, decision)

	cur := s.cfg.Account.Currency
	return calcResponse{
		Currency:    cur,
		Calculation: calc,
		Decision:    decision,
		Report:      report.Text(calc, cur),
		Copy:        report.CopyLine(calc, cur),
	}
}

func (s *Server) readRequest(c *gin.Context) (calcRequest, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "read body: " + err.Error()})
		return calcRequest{}, false
	}
	req, err := parseCalcRequest(body, s.cfg.Inputs())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return calcRequest{}, false
	}
	return req, true
}

func (s *Server) getPairs(c *gin.Context) {
	out := make([]market.PairMeta, 0, len(market.Pairs))
	for _, sym := range market.Symbols() {
		out = append(out, market.Pairs[sym])
	}
	c.JSON(http.StatusOK, gin.H{
		"pairs":              out,
		"default_pip_value":  market.DefaultPipValue,
		"default_volatility": market.DefaultVolatility,
	})
}

func (s *Server) postCalc(c *gin.Context) {
	req, ok := s.readRequest(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.calculate(req.Inputs))
}

func (s *Server) postScenario(c *gin.Context) {
	if s.journal == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "journal disabled"})
		return
	}
	req, ok := s.readRequest(c)
	if !ok {
		return
	}

	resp := s.calculate(req.Inputs)
	sc := journal.NewScenario(resp.Calculation, req.Note, s.now())
	if err := s.journal.RecordScenario(sc); err != nil {
		s.log.Error("record scenario", "id", sc.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save scenario"})
		return
	}

	s.metrics.Saved.Inc()
	s.log.Debug("scenario saved", "id", sc.ID, "pair", sc.Calculation.Inputs.Pair)
	c.JSON(http.StatusCreated, gin.H{
		"scenario": sc,
		"decision": resp.Decision,
		"report":   resp.Report,
	})
}

func (s *Server) reader(c *gin.Context) (Reader, bool) {
	r, ok := s.journal.(Reader)
	if s.journal == nil || !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "journal cannot be queried"})
		return nil, false
	}
	return r, true
}

func (s *Server) getScenarios(c *gin.Context) {
	r, ok := s.reader(c)
	if !ok {
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	list, err := r.ListScenarios(limit)
	if err != nil {
		s.log.Error("list scenarios", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list scenarios"})
		return
	}
	if list == nil {
		list = []journal.Scenario{}
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": list})
}

func (s *Server) getScenario(c *gin.Context) {
	r, ok := s.reader(c)
	if !ok {
		return
	}

	sc, err := r.GetScenario(c.Param("id"))
	if errors.Is(err, journal.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("get scenario", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scenario"})
		return
	}
	c.JSON(http.StatusOK, sc)
}
