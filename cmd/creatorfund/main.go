package main

import (
	"fmt"
	"os"

	"github.com/coschain/creatorfund-go/cmd/creatorfund/commands"
	"github.com/coschain/creatorfund-go/config"
	"github.com/spf13/cobra"
)

// creatorfund runs the reward ledger node, or one of its maintenance subcommands.
var rootCmd = &cobra.Command{
	Use:   "creatorfund",
	Short: "Creatorfund is a content ledger paying rewards to popular authors",
}

func addCommands() {
	rootCmd.PersistentFlags().StringVarP(&commands.DataDir, "datadir", "d", config.DefaultDataDir(), "data directory holding config.toml")
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.StartCmd())
	rootCmd.AddCommand(commands.PostCmd())
}

func main() {
	addCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
