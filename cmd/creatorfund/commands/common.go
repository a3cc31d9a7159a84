package commands

import (
	"github.com/coschain/creatorfund-go/app"
	"github.com/coschain/creatorfund-go/config"
	"github.com/coschain/creatorfund-go/db/storage"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DataDir is set by the --datadir flag of the root command.
var DataDir string

// openController loads the configuration in DataDir and opens the database and
// controller it describes.
func openController(log *logrus.Logger) (*app.Controller, *storage.DatabaseService, config.Config, error) {
	cfg, err := config.LoadConfig(DataDir)
	if err != nil {
		return nil, nil, cfg, err
	}
	db, err := storage.NewDatabaseService(cfg.DB.Backend, cfg.DBPath(), storage.LevelOptions{
		Sync:        cfg.DB.Sync,
		CacheSizeMB: cfg.DB.CacheSizeMB,
	})
	if err != nil {
		return nil, nil, cfg, err
	}
	if err = db.Open(); err != nil {
		return nil, nil, cfg, err
	}
	fund, err := cfg.FundAccount()
	if err != nil {
		db.Close()
		return nil, nil, cfg, err
	}
	ctrl := app.NewController(db, app.Options{FundAccount: fund, Reward: cfg.Reward.Amount}, log)
	if err = ctrl.Open(app.Genesis{Owner: cfg.FundOwner(), Balance: cfg.Fund.Balance}); err != nil {
		db.Close()
		return nil, nil, cfg, errors.WithMessage(err, "open controller")
	}
	return ctrl, db, cfg, nil
}
