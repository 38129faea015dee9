package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/lotsize/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 10000.0, cfg.Account.Balance)
	assert.Equal(t, 1.0, cfg.Trade.RiskPercent)
	assert.Equal(t, 0.01, cfg.Trade.LotStep)
	assert.NoError(t, cfg.Validate())
}

func TestInputs(t *testing.T) {
	cfg := Default()
	cfg.Account.Tier = "Micro"
	cfg.Trade.TakeProfitPips = 60

	in := cfg.Inputs()
	assert.Equal(t, 10000.0, in.Balance)
	assert.Equal(t, 1.0, in.RiskPercent)
	assert.Equal(t, 30.0, in.StopLossPips)
	assert.Equal(t, 60.0, in.TakeProfitPips)
	assert.Equal(t, "EURUSD", in.Pair)
	assert.Equal(t, risk.TierMicro, in.Tier)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"valid config", func(c *Config) {}, ""},
		{"missing currency", func(c *Config) { c.Account.Currency = "" }, "account.currency is required"},
		{"negative balance", func(c *Config) { c.Account.Balance = -1000 }, "account.balance must be positive"},
		{"unknown tier", func(c *Config) { c.Account.Tier = "vip" }, "unknown account.tier"},
		{"missing pair", func(c *Config) { c.Trade.Pair = "" }, "trade.pair is required"},
		{"invalid risk percent", func(c *Config) { c.Trade.RiskPercent = 150 }, "trade.risk_percent must be between 0 and 100"},
		{"negative stop pips", func(c *Config) { c.Trade.StopPips = -10 }, "trade.stop_pips must be positive"},
		{"negative take profit", func(c *Config) { c.Trade.TakeProfitPips = -1 }, "trade.take_profit_pips must not be negative"},
		{"zero lot step", func(c *Config) { c.Trade.LotStep = 0 }, "trade.lot_step must be positive"},
		{"margin rate", func(c *Config) { c.MarginRate = 2 }, "margin_rate must be between 0 and 1"},
		{"csv without file", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }, "journal file required for CSV type"},
		{"sqlite without path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }, "journal db_path required for SQLite type"},
		{"unknown journal", func(c *Config) { c.Journal.Type = "postgres" }, "journal.type must be"},
		{"no journal", func(c *Config) { c.Journal = JournalConfig{Type: "none"} }, ""},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Account.Balance = 2500
			cfg.Trade.Pair = "GBPUSD"
			cfg.Trade.TakeProfitPips = 90
			cfg.Policy.MinRR = 2
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Account, loaded.Account)
			assert.Equal(t, cfg.Trade, loaded.Trade)
			assert.Equal(t, cfg.Policy, loaded.Policy)
			assert.Equal(t, cfg.Journal, loaded.Journal)
			assert.Equal(t, cfg.MarginRate, loaded.MarginRate)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  balance: 800\ntrade:\n  pair: USDJPY\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Account.Balance)
	assert.Equal(t, "USDJPY", cfg.Trade.Pair)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 30.0, cfg.Trade.StopPips)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LOTSIZE_ACCOUNT_BALANCE", "2500")
	t.Setenv("LOTSIZE_TRADE_PAIR", "EURGBP")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2500.0, cfg.Account.Balance)
	assert.Equal(t, "EURGBP", cfg.Trade.Pair)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)

	_, err = LoadFromFile("")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trade:\n  stop_pips: -5\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trade.stop_pips must be positive")
}
