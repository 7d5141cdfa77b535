package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"DCASimulator/internal/model"
	"DCASimulator/internal/series"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr         string
		AllowOrigins []string
	}
	Simulation model.Parameters
	Dataset    struct {
		StartDate string // YYYY-MM-DD, month-end convention
		Prices    []float64
	}
}

// fileConfig mirrors the YAML layout with pointer parameter fields, so an
// absent key can be told apart from an explicit zero or false. A 0% cash
// yield, an all-cash equity ratio, and profit-taking switched off are all
// legal settings and must survive loading.
type fileConfig struct {
	Server struct {
		Addr         string   `yaml:"addr"`
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"server"`
	Simulation struct {
		InitialCapital    *float64 `yaml:"initial_capital"`
		AnnualCashYield   *float64 `yaml:"annual_cash_yield"`
		DropTrigger       *float64 `yaml:"drop_trigger"`
		DropMultiplier    *int     `yaml:"drop_multiplier"`
		ProfitTakeEnabled *bool    `yaml:"profit_take_enabled"`
		ProfitTakeTarget  *float64 `yaml:"profit_take_target"`
		EquityRatio       *float64 `yaml:"equity_ratio"`
	} `yaml:"simulation"`
	Dataset struct {
		StartDate string    `yaml:"start_date"`
		Prices    []float64 `yaml:"prices"`
	} `yaml:"dataset"`
}

// Load starts from the built-in defaults, overlays keys present in the YAML
// file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	// Defaults mirror the classic DJI setup
	cfg.Server.Addr = ":8080"
	cfg.Server.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	cfg.Simulation = model.Parameters{
		InitialCapital:    50000,
		AnnualCashYield:   0.05,
		DropTrigger:       0.03,
		DropMultiplier:    3,
		ProfitTakeEnabled: true,
		ProfitTakeTarget:  0.08,
		EquityRatio:       0.80,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if fc.Server.Addr != "" {
			cfg.Server.Addr = fc.Server.Addr
		}
		if len(fc.Server.AllowOrigins) > 0 {
			cfg.Server.AllowOrigins = fc.Server.AllowOrigins
		}
		if fc.Simulation.InitialCapital != nil {
			cfg.Simulation.InitialCapital = *fc.Simulation.InitialCapital
		}
		if fc.Simulation.AnnualCashYield != nil {
			cfg.Simulation.AnnualCashYield = *fc.Simulation.AnnualCashYield
		}
		if fc.Simulation.DropTrigger != nil {
			cfg.Simulation.DropTrigger = *fc.Simulation.DropTrigger
		}
		if fc.Simulation.DropMultiplier != nil {
			cfg.Simulation.DropMultiplier = *fc.Simulation.DropMultiplier
		}
		if fc.Simulation.ProfitTakeEnabled != nil {
			cfg.Simulation.ProfitTakeEnabled = *fc.Simulation.ProfitTakeEnabled
		}
		if fc.Simulation.ProfitTakeTarget != nil {
			cfg.Simulation.ProfitTakeTarget = *fc.Simulation.ProfitTakeTarget
		}
		if fc.Simulation.EquityRatio != nil {
			cfg.Simulation.EquityRatio = *fc.Simulation.EquityRatio
		}
		if fc.Dataset.StartDate != "" {
			cfg.Dataset.StartDate = fc.Dataset.StartDate
		}
		if len(fc.Dataset.Prices) > 0 {
			cfg.Dataset.Prices = fc.Dataset.Prices
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("INITIAL_CAPITAL"); v != "" {
		var capital float64
		if _, err := fmt.Sscanf(v, "%f", &capital); err == nil {
			cfg.Simulation.InitialCapital = capital
		}
	}
	if v := os.Getenv("ANNUAL_CASH_YIELD"); v != "" {
		var cashYield float64
		if _, err := fmt.Sscanf(v, "%f", &cashYield); err == nil {
			cfg.Simulation.AnnualCashYield = cashYield
		}
	}
	if v := os.Getenv("DROP_TRIGGER"); v != "" {
		var trigger float64
		if _, err := fmt.Sscanf(v, "%f", &trigger); err == nil {
			cfg.Simulation.DropTrigger = trigger
		}
	}
	if v := os.Getenv("DROP_MULTIPLIER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.DropMultiplier = n
		}
	}
	if v := os.Getenv("PROFIT_TAKE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Simulation.ProfitTakeEnabled = b
		}
	}
	if v := os.Getenv("PROFIT_TAKE_TARGET"); v != "" {
		var target float64
		if _, err := fmt.Sscanf(v, "%f", &target); err == nil {
			cfg.Simulation.ProfitTakeTarget = target
		}
	}
	if v := os.Getenv("EQUITY_RATIO"); v != "" {
		var ratio float64
		if _, err := fmt.Sscanf(v, "%f", &ratio); err == nil {
			cfg.Simulation.EquityRatio = ratio
		}
	}

	return cfg, nil
}

// Validate checks that the captured parameters are usable. The dataset is
// validated by Series at wiring time.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return c.Simulation.Validate()
}

// Series returns the configured price series, falling back to the embedded
// DJI dataset when no prices are configured.
func (c *Config) Series() (model.PriceSeries, error) {
	if len(c.Dataset.Prices) == 0 {
		return series.Default(), nil
	}
	start, err := time.Parse("2006-01-02", c.Dataset.StartDate)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("parse dataset.start_date: %w", err)
	}
	return series.New(c.Dataset.Prices, start)
}
