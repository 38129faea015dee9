package server

import (
	"errors"
	"strings"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/pkg/num"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/tidwall/gjson"
)

var errBadJSON = errors.New("request body is not valid JSON")

type calcRequest struct {
	Inputs risk.Inputs
	Note   string
}

// parseCalcRequest reads a calculation request. Numeric fields may be JSON
// numbers or strings ("1,5" is 1.5); anything unparseable is 0. Absent
// fields keep the value from defaults.
func parseCalcRequest(body []byte, defaults risk.Inputs) (calcRequest, error) {
	req := calcRequest{Inputs: defaults}
	if len(strings.TrimSpace(string(body))) == 0 {
		return req, nil
	}
	if !gjson.ValidBytes(body) {
		return req, errBadJSON
	}

	numField := func(dst *float64, keys ...string) {
		for _, k := range keys {
			if r := gjson.GetBytes(body, k); r.Exists() {
				*dst = num.ParseOrZero(r.String())
				return
			}
		}
	}

	in := &req.Inputs
	numField(&in.Balance, "balance")
	numField(&in.RiskPercent, "risk_percent")
	numField(&in.StopLossPips, "stop_loss", "stop_loss_pips")
	numField(&in.TakeProfitPips, "take_profit", "take_profit_pips")
	numField(&in.CustomPipValue, "custom_pip", "custom_pip_value")
	numField(&in.LotStep, "lot_step")

	if r := gjson.GetBytes(body, "pair"); r.Exists() {
		in.Pair = r.String()
	}
	if p := market.Normalize(in.Pair); p != "" {
		in.Pair = p
	}
	if r := gjson.GetBytes(body, "account_tier"); r.Exists() {
		in.Tier = risk.ParseTier(r.String())
	}
	req.Note = gjson.GetBytes(body, "note").String()

	return req, nil
}
