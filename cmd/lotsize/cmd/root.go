package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logLvl  string

	cfg *config.Config
	lg  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lotsize",
	Short: "Forex position sizing and risk insight calculator",
	Long: `Lotsize turns an account balance, a risk percentage and a stop distance
into a lot size, then scores how risky the trade is.

It provides tools for:
  - Risk-based position sizing with lot step quantization
  - Tier and volatility adjusted lot suggestions
  - Risk scoring, insights and policy checks
  - Saving scenarios to a SQLite or CSV journal
  - Serving the calculator over HTTP

Settings come from defaults, an optional config file and LOTSIZE_*
environment variables (a .env file in the working directory is read too).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// a missing .env is normal
		_ = godotenv.Load()

		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLvl != "" {
			c.Log.Level = logLvl
		}
		cfg = c
		lg = logger.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
		lg.Debug("config loaded", "file", cfgFile, "pair", cfg.Trade.Pair)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLvl, "log-level", "", "override log.level (debug, info, warn, error)")
}
