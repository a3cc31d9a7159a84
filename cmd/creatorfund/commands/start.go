package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coschain/creatorfund-go/api"
	"github.com/coschain/creatorfund-go/app"
	"github.com/coschain/creatorfund-go/common"
	"github.com/coschain/creatorfund-go/common/constants"
	"github.com/coschain/creatorfund-go/config"
	"github.com/coschain/creatorfund-go/mylog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func StartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the creatorfund node",
		Run:   startNode,
	}
}

func startNode(cmd *cobra.Command, args []string) {
	_, _ = cmd, args
	cfg, err := config.LoadConfig(DataDir)
	if err != nil {
		common.Fatalf("%v", err)
	}
	log, err := mylog.Init(cfg.LogPath(), cfg.LogLevel, cfg.LogAge)
	if err != nil {
		common.Fatalf("init logger failed, err: %v", err)
	}

	ctrl, db, cfg, err := openController(log)
	if err != nil {
		common.Fatalf("open node failed, err: %v", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ctrl.SetMetrics(app.NewMetrics(registry))

	reader, err := app.NewPostReader(ctrl, constants.PostCacheSize)
	if err != nil {
		common.Fatalf("create post reader failed, err: %v", err)
	}
	defer reader.Close()

	server := api.NewServer(ctrl, reader, registry, log)
	if err = server.Start(cfg.HTTP.Listen); err != nil {
		common.Fatalf("start http server failed, err: %v", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)
	<-sigc
	log.Info("Got interrupt, shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Stop(ctx); err != nil {
		log.WithError(err).Error("http server shutdown")
	}
}
