package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/cache"
)

type Config struct {
	LogConfig     LogConfig     `json:"log_config"`
	DBConfig      DBConfig      `json:"db_config"`
	BridgeConfig  BridgeConfig  `json:"bridge_config"`
	ServerConfig  ServerConfig  `json:"server_config"`
	MetricsConfig MetricsConfig `json:"metrics_config"`
	CacheConfig   CacheConfig   `json:"cache_config"`
}

func (cfg *Config) Validate() {
	cfg.LogConfig.Validate()
	cfg.DBConfig.Validate()
	cfg.BridgeConfig.Validate()
}

type BridgeConfig struct {
	LedgerAddress string `json:"ledger_address"` // LedgerAddress is the address of the multi-token economy ledger the bridge accepts deposits from
	BridgeAddress string `json:"bridge_address"` // BridgeAddress is the account on the ledger holding the bridge's outbound funds
	OwnerAddress  string `json:"owner_address"`  // OwnerAddress is the administrator allowed to mutate the resource-type registry
}

func (cfg *BridgeConfig) Validate() {
	if !common.IsHexAddress(cfg.LedgerAddress) {
		panic(fmt.Sprintf("invalid ledger address %q", cfg.LedgerAddress))
	}
	if !common.IsHexAddress(cfg.BridgeAddress) {
		panic(fmt.Sprintf("invalid bridge address %q", cfg.BridgeAddress))
	}
	if !common.IsHexAddress(cfg.OwnerAddress) {
		panic(fmt.Sprintf("invalid owner address %q", cfg.OwnerAddress))
	}
}

func (cfg *BridgeConfig) Ledger() common.Address {
	return common.HexToAddress(cfg.LedgerAddress)
}

func (cfg *BridgeConfig) Bridge() common.Address {
	return common.HexToAddress(cfg.BridgeAddress)
}

func (cfg *BridgeConfig) Owner() common.Address {
	return common.HexToAddress(cfg.OwnerAddress)
}

type ServerConfig struct {
	ListenAddress string `json:"listen_address"`
}

func (cfg *ServerConfig) GetListenAddress() string {
	if cfg.ListenAddress != "" {
		return cfg.ListenAddress
	}
	return DefaultListenAddress
}

type MetricsConfig struct {
	Enable  bool   `json:"enable"`
	Address string `json:"address"`
}

type CacheConfig struct {
	CacheSize uint64 `json:"cache_size"`
}

func (c *CacheConfig) GetCacheSize() uint64 {
	if c.CacheSize != 0 {
		return c.CacheSize
	}
	return cache.DefaultCacheSize
}

type DBConfig struct {
	Dialect      string `json:"dialect"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Url          string `json:"url"`
	MaxIdleConns int    `json:"max_idle_conns"`
	MaxOpenConns int    `json:"max_open_conns"`
}

func (cfg *DBConfig) Validate() {
	if cfg.Dialect != DBDialectMysql && cfg.Dialect != DBDialectSqlite3 {
		panic(fmt.Sprintf("only %s and %s supported", DBDialectMysql, DBDialectSqlite3))
	}
	if cfg.Dialect == DBDialectMysql && (cfg.Username == "" || cfg.Url == "") {
		panic("db config is not correct, missing username and/or url")
	}
	if cfg.MaxIdleConns == 0 || cfg.MaxOpenConns == 0 {
		panic("db connections is not correct")
	}
}

type LogConfig struct {
	Level                        string `json:"level"`
	Filename                     string `json:"filename"`
	MaxFileSizeInMB              int    `json:"max_file_size_in_mb"`
	MaxBackupsOfLogFiles         int    `json:"max_backups_of_log_files"`
	MaxAgeToRetainLogFilesInDays int    `json:"max_age_to_retain_log_files_in_days"`
	UseConsoleLogger             bool   `json:"use_console_logger"`
	UseFileLogger                bool   `json:"use_file_logger"`
	Compress                     bool   `json:"compress"`
}

func (cfg *LogConfig) Validate() {
	if cfg.UseFileLogger {
		if cfg.Filename == "" {
			panic("filename should not be empty if use file logger")
		}
		if cfg.MaxFileSizeInMB <= 0 {
			panic("max_file_size_in_mb should be larger than 0 if use file logger")
		}
		if cfg.MaxBackupsOfLogFiles <= 0 {
			panic("max_backups_of_log_files should be larger than 0 if use file logger")
		}
	}
}

func ParseConfigFromJson(content string) *Config {
	var config Config
	if err := json.Unmarshal([]byte(content), &config); err != nil {
		panic(err)
	}
	config.Validate()
	return &config
}

func ParseConfigFromFile(filePath string) *Config {
	bz, err := os.ReadFile(filePath)
	if err != nil {
		panic(err)
	}

	var config Config
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(err)
	}
	config.Validate()
	return &config
}
