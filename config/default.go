package config

import (
	"path/filepath"

	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/mitchellh/go-homedir"
)

const (
	ClientIdentifier    = "creatorfund"
	ConfigFileName      = "config.toml"
	DefaultHTTPEndPoint = "localhost:8080"
	DefaultFundBalance  = 1000 * constants.DefaultCreatorFundReward
)

// DefaultConfig returns reasonable default settings rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		Name:     ClientIdentifier,
		DataDir:  dataDir,
		LogLevel: "info",
		LogAge:   7,
		DB: DBConfig{
			Backend:     "leveldb",
			CacheSizeMB: 16,
		},
		Reward: RewardConfig{
			Amount: constants.DefaultCreatorFundReward,
		},
		Fund: FundConfig{
			Owner:   constants.CreatorFundName,
			Balance: DefaultFundBalance,
		},
		HTTP: HTTPConfig{
			Listen: DefaultHTTPEndPoint,
		},
	}
}

func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, "."+ClientIdentifier)
}
