package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coschain/creatorfund-go/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	initBackend string
	initListen  string
	initForce   bool
)

func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration files",
		RunE:  initConf,
	}
	cmd.Flags().StringVarP(&initBackend, "backend", "b", "leveldb", "database backend [leveldb/memory]")
	cmd.Flags().StringVarP(&initListen, "listen", "l", config.DefaultHTTPEndPoint, "http listen address")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func initConf(cmd *cobra.Command, args []string) error {
	if len(DataDir) == 0 {
		return errors.New("no data directory, pass --datadir")
	}
	cfg := config.DefaultConfig(DataDir)
	cfg.DB.Backend = initBackend
	cfg.HTTP.Listen = initListen
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(DataDir, 0700); err != nil {
		return err
	}
	path := filepath.Join(DataDir, config.ConfigFileName)
	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.Errorf("%s already exists, use --force to overwrite", path)
	}
	if err := config.WriteConfigFile(DataDir, config.ConfigFileName, cfg, 0600); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
	return nil
}
