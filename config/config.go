package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/lotsize/risk"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. LOTSIZE_ACCOUNT_BALANCE.
const EnvPrefix = "LOTSIZE"

// Config holds the defaults for calculations and the settings of the
// journal, HTTP server and logger.
type Config struct {
	Account    AccountConfig `json:"account" yaml:"account" mapstructure:"account"`
	Trade      TradeConfig   `json:"trade" yaml:"trade" mapstructure:"trade"`
	Policy     risk.Policy   `json:"policy" yaml:"policy" mapstructure:"policy"`
	MarginRate float64       `json:"margin_rate" yaml:"margin_rate" mapstructure:"margin_rate"`
	Journal    JournalConfig `json:"journal" yaml:"journal" mapstructure:"journal"`
	Server     ServerConfig  `json:"server" yaml:"server" mapstructure:"server"`
	Log        LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

type AccountConfig struct {
	Currency string  `json:"currency" yaml:"currency" mapstructure:"currency"`
	Balance  float64 `json:"balance" yaml:"balance" mapstructure:"balance"`
	Tier     string  `json:"tier" yaml:"tier" mapstructure:"tier"`
}

// TradeConfig holds the default trade parameters. RiskPercent is in
// percent (1 means 1%).
type TradeConfig struct {
	Pair           string  `json:"pair" yaml:"pair" mapstructure:"pair"`
	RiskPercent    float64 `json:"risk_percent" yaml:"risk_percent" mapstructure:"risk_percent"`
	StopPips       float64 `json:"stop_pips" yaml:"stop_pips" mapstructure:"stop_pips"`
	TakeProfitPips float64 `json:"take_profit_pips" yaml:"take_profit_pips" mapstructure:"take_profit_pips"`
	LotStep        float64 `json:"lot_step" yaml:"lot_step" mapstructure:"lot_step"`
	CustomPipValue float64 `json:"custom_pip_value,omitempty" yaml:"custom_pip_value,omitempty" mapstructure:"custom_pip_value"`
}

type JournalConfig struct {
	Type   string `json:"type" yaml:"type" mapstructure:"type"` // "none", "csv" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty" mapstructure:"db_path"`
	File   string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"` // "text" or "json"
}

// Inputs builds calculation inputs from the trade defaults.
func (c *Config) Inputs() risk.Inputs {
	return risk.Inputs{
		Balance:        c.Account.Balance,
		RiskPercent:    c.Trade.RiskPercent,
		StopLossPips:   c.Trade.StopPips,
		TakeProfitPips: c.Trade.TakeProfitPips,
		Pair:           c.Trade.Pair,
		CustomPipValue: c.Trade.CustomPipValue,
		LotStep:        c.Trade.LotStep,
		Tier:           risk.ParseTier(c.Account.Tier),
	}
}

// Load reads defaults, then the file at path (if path is not empty), then
// LOTSIZE_* environment variables. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			v.SetConfigType("json")
		default:
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("read config file: empty path")
	}
	return Load(path)
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("account.currency", d.Account.Currency)
	v.SetDefault("account.balance", d.Account.Balance)
	v.SetDefault("account.tier", d.Account.Tier)

	v.SetDefault("trade.pair", d.Trade.Pair)
	v.SetDefault("trade.risk_percent", d.Trade.RiskPercent)
	v.SetDefault("trade.stop_pips", d.Trade.StopPips)
	v.SetDefault("trade.take_profit_pips", d.Trade.TakeProfitPips)
	v.SetDefault("trade.lot_step", d.Trade.LotStep)
	v.SetDefault("trade.custom_pip_value", d.Trade.CustomPipValue)

	v.SetDefault("policy.max_risk_percent", d.Policy.MaxRiskPercent)
	v.SetDefault("policy.min_rr", d.Policy.MinRR)
	v.SetDefault("policy.max_margin_percent", d.Policy.MaxMarginPercent)

	v.SetDefault("margin_rate", d.MarginRate)

	v.SetDefault("journal.type", d.Journal.Type)
	v.SetDefault("journal.db_path", d.Journal.DBPath)
	v.SetDefault("journal.file", d.Journal.File)

	v.SetDefault("server.addr", d.Server.Addr)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// SaveToFile saves configuration as YAML for .yaml/.yml paths and JSON
// otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	switch risk.AccountTier(strings.ToLower(c.Account.Tier)) {
	case "", risk.TierMicro, risk.TierSmall, risk.TierStandard, risk.TierProfessional:
	default:
		return fmt.Errorf("unknown account.tier: %s", c.Account.Tier)
	}
	if c.Trade.Pair == "" {
		return fmt.Errorf("trade.pair is required")
	}
	if c.Trade.RiskPercent <= 0 || c.Trade.RiskPercent > 100 {
		return fmt.Errorf("trade.risk_percent must be between 0 and 100")
	}
	if c.Trade.StopPips <= 0 {
		return fmt.Errorf("trade.stop_pips must be positive")
	}
	if c.Trade.TakeProfitPips < 0 {
		return fmt.Errorf("trade.take_profit_pips must not be negative")
	}
	if c.Trade.LotStep <= 0 {
		return fmt.Errorf("trade.lot_step must be positive")
	}
	if c.Trade.CustomPipValue < 0 {
		return fmt.Errorf("trade.custom_pip_value must not be negative")
	}
	if c.MarginRate <= 0 || c.MarginRate > 1 {
		return fmt.Errorf("margin_rate must be between 0 and 1")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.File == "" {
			return fmt.Errorf("journal file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency: "USD",
			Balance:  10000,
			Tier:     string(risk.TierStandard),
		},
		Trade: TradeConfig{
			Pair:        "EURUSD",
			RiskPercent: 1,
			StopPips:    30,
			LotStep:     risk.DefaultLotStep,
		},
		Policy:     risk.DefaultPolicy(),
		MarginRate: 0.01,
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./lotsize.sqlite",
		},
		Server: ServerConfig{
			Addr: ":5003",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
