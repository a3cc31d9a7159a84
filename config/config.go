package config

import (
	"os"
	"path/filepath"

	"github.com/coschain/creatorfund-go/prototype"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type DBConfig struct {
	// leveldb or memory
	Backend     string `mapstructure:"backend" toml:"Backend"`
	CacheSizeMB int    `mapstructure:"cachesizemb" toml:"CacheSizeMB"`
	Sync        bool   `mapstructure:"sync" toml:"Sync"`
}

type RewardConfig struct {
	// paid once per post that reached the vote threshold
	Amount uint64 `mapstructure:"amount" toml:"Amount"`
}

// FundConfig names the token account rewards are paid from.
// Account may be left empty, the default token account of Owner is used then.
type FundConfig struct {
	Account string `mapstructure:"account" toml:"Account"`
	Owner   string `mapstructure:"owner" toml:"Owner"`
	// credited to the fund when it is created
	Balance uint64 `mapstructure:"balance" toml:"Balance"`
}

type HTTPConfig struct {
	Listen string `mapstructure:"listen" toml:"Listen"`
}

type Config struct {
	Name     string       `mapstructure:"name" toml:"Name"`
	DataDir  string       `mapstructure:"datadir" toml:"DataDir"`
	LogLevel string       `mapstructure:"loglevel" toml:"LogLevel"`
	LogAge   uint32       `mapstructure:"logage" toml:"LogAge"`
	DB       DBConfig     `mapstructure:"db" toml:"db"`
	Reward   RewardConfig `mapstructure:"reward" toml:"reward"`
	Fund     FundConfig   `mapstructure:"fund" toml:"fund"`
	HTTP     HTTPConfig   `mapstructure:"http" toml:"http"`
}

func (c *Config) Validate() error {
	switch c.DB.Backend {
	case "leveldb", "memory":
	default:
		return errors.Errorf("unknown db backend %q", c.DB.Backend)
	}
	if c.Reward.Amount == 0 {
		return errors.New("reward amount must be positive")
	}
	if len(c.Fund.Owner) == 0 {
		return errors.New("fund owner is required")
	}
	if _, err := c.FundAccount(); err != nil {
		return err
	}
	if len(c.HTTP.Listen) == 0 {
		return errors.New("http listen address is required")
	}
	return nil
}

func (c *Config) FundOwner() prototype.Address {
	return prototype.NamedAddress(c.Fund.Owner)
}

func (c *Config) FundAccount() (prototype.Address, error) {
	if len(c.Fund.Account) == 0 {
		return prototype.TokenAccountAddress(c.FundOwner()), nil
	}
	account, err := prototype.ParseAddress(c.Fund.Account)
	if err != nil {
		return prototype.ZeroAddress, errors.WithMessage(err, "fund account")
	}
	return account, nil
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "db")
}

func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "logs")
}

// LoadConfig reads config.toml from dir on top of the defaults.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig(dir)
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "read config in %s (do `init` first)", dir)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decode config")
	}
	if len(cfg.DataDir) == 0 {
		cfg.DataDir = dir
	}
	if abs, err := filepath.Abs(cfg.DataDir); err == nil {
		cfg.DataDir = abs
	}
	return cfg, cfg.Validate()
}

func WriteConfigFile(configDirPath string, configName string, cfg Config, mode os.FileMode) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	header := []byte("# This is a TOML config file.\n# For more information, see https://github.com/toml-lang/toml\n\n")
	configPath := filepath.Join(configDirPath, configName)
	return os.WriteFile(configPath, append(header, data...), mode)
}
