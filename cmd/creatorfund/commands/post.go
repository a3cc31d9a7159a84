package commands

import (
	"encoding/json"

	"github.com/coschain/creatorfund-go/app"
	"github.com/coschain/creatorfund-go/mylog"
	"github.com/coschain/creatorfund-go/prototype"
	"github.com/spf13/cobra"
)

func PostCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "inspect posts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "show <address>",
		Short:   "print a post and its tallies",
		Example: "post show 4Gv4...",
		Args:    cobra.ExactArgs(1),
		RunE:    showPost,
	})
	return cmd
}

func showPost(cmd *cobra.Command, args []string) error {
	post, err := prototype.ParseAddress(args[0])
	if err != nil {
		return err
	}
	ctrl, db, _, err := openController(mylog.Discard())
	if err != nil {
		return err
	}
	defer db.Close()

	reader, err := app.NewPostReader(ctrl, 1)
	if err != nil {
		return err
	}
	defer reader.Close()

	view, err := reader.Post(post)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
