package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rustyeddy/lotsize/journal"
	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/pkg/num"
	"github.com/rustyeddy/lotsize/report"
	"github.com/rustyeddy/lotsize/risk"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Size a position and assess its risk",
	Long: `Calc computes the lot size for a trade from the account balance, the
risk percentage and the stop loss distance, then prints the margin figures,
a risk score and insights.

Unset flags fall back to the account and trade sections of the config.
Numbers may use a decimal comma ("1,5").

Examples:
  lotsize calc --balance 10000 --risk 1 --stop 30 --pair EURUSD
  lotsize calc --pair USDJPY --stop 45 --tp 90 --tier micro --save
  lotsize calc --copy`,
	Args: cobra.NoArgs,
	RunE: runCalc,
}

var (
	calcBalance  string
	calcRisk     string
	calcStop     string
	calcTP       string
	calcPair     string
	calcPipValue string
	calcLotStep  string
	calcTier     string
	calcNote     string

	calcSave bool
	calcCopy bool
	calcOrg  bool
	calcJSON bool
)

func init() {
	rootCmd.AddCommand(calcCmd)

	f := calcCmd.Flags()
	f.StringVarP(&calcBalance, "balance", "b", "", "account balance")
	f.StringVarP(&calcRisk, "risk", "r", "", "risk per trade in percent (1 = 1%)")
	f.StringVarP(&calcStop, "stop", "s", "", "stop loss distance in pips")
	f.StringVar(&calcTP, "tp", "", "take profit distance in pips")
	f.StringVarP(&calcPair, "pair", "p", "", "currency pair, e.g. EURUSD or EUR/USD")
	f.StringVar(&calcPipValue, "pip-value", "", "custom pip value per standard lot")
	f.StringVar(&calcLotStep, "lot-step", "", "broker lot increment")
	f.StringVarP(&calcTier, "tier", "t", "", "account tier (micro, small, standard, professional)")
	f.StringVar(&calcNote, "note", "", "note stored with a saved scenario")

	f.BoolVar(&calcSave, "save", false, "record the scenario in the journal")
	f.BoolVar(&calcCopy, "copy", false, "print only the one-line summary")
	f.BoolVar(&calcOrg, "org", false, "print the scenario as an org-mode entry")
	f.BoolVar(&calcJSON, "json", false, "print the full calculation as JSON")
}

// calcInputs overlays the flags the user set on the config defaults.
func calcInputs(cmd *cobra.Command) risk.Inputs {
	in := cfg.Inputs()
	f := cmd.Flags()

	numFlag := func(name, val string, dst *float64) {
		if f.Changed(name) {
			*dst = num.ParseOrZero(val)
		}
	}
	numFlag("balance", calcBalance, &in.Balance)
	numFlag("risk", calcRisk, &in.RiskPercent)
	numFlag("stop", calcStop, &in.StopLossPips)
	numFlag("tp", calcTP, &in.TakeProfitPips)
	numFlag("pip-value", calcPipValue, &in.CustomPipValue)
	numFlag("lot-step", calcLotStep, &in.LotStep)

	if f.Changed("pair") {
		in.Pair = calcPair
	}
	in.Pair = market.Normalize(in.Pair)
	if f.Changed("tier") {
		in.Tier = risk.ParseTier(calcTier)
	}
	return in
}

func runCalc(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	in := calcInputs(cmd)
	calc := risk.Calculate(in, cfg.MarginRate)
	decision := risk.Evaluate(cfg.Policy, calc)
	cur := cfg.Account.Currency

	if _, ok := market.Lookup(in.Pair); !ok && in.CustomPipValue <= 0 {
		lg.Warn("unknown pair, using default pip value", "pair", in.Pair, "pip_value", market.DefaultPipValue)
	}

	sc := journal.NewScenario(calc, calcNote, time.Now())
	if calcSave {
		if err := saveScenario(sc); err != nil {
			return err
		}
	}

	switch {
	case calcCopy:
		fmt.Fprintln(w, report.CopyLine(calc, cur))
	case calcJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"currency":    cur,
			"calculation": calc,
			"decision":    decision,
		}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case calcOrg:
		fmt.Fprintln(w, journal.FormatScenarioOrg(sc))
	default:
		fmt.Fprintln(w, report.Text(calc, cur))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Insights:")
		fmt.Fprintln(w, report.Insights(calc.Assessment))
		if !decision.Allowed {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Policy violations:")
			for _, v := range decision.Violations {
				fmt.Fprintf(w, "- %s: %s\n", v.Code, v.Msg)
			}
		}
	}

	if calcSave && !calcCopy && !calcJSON {
		fmt.Fprintf(w, "\n✓ Saved scenario %s\n", sc.ID)
	}
	return nil
}

func saveScenario(sc journal.Scenario) error {
	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j == nil {
		return fmt.Errorf("journal.type is none; nothing to save to")
	}
	defer j.Close()

	if err := j.RecordScenario(sc); err != nil {
		return fmt.Errorf("record scenario: %w", err)
	}
	lg.Debug("scenario saved", "id", sc.ID, "journal", cfg.Journal.Type)
	return nil
}
