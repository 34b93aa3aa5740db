package config

import (
	"github.com/danakotech/osintwalletonline/internal/analysis/risk"
	"github.com/danakotech/osintwalletonline/internal/infra/blacklist"
	"github.com/danakotech/osintwalletonline/internal/infra/etherscan"
	"github.com/danakotech/osintwalletonline/internal/infra/storage/sqlite"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server    ServerConfig     `yaml:"server"`
	Etherscan etherscan.Config `yaml:"etherscan"`
	Blacklist blacklist.Config `yaml:"blacklist"`
	Scoring   risk.Weights     `yaml:"scoring"`
	Storage   sqlite.Config    `yaml:"storage"`
	Logging   LoggingConfig    `yaml:"logging"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
