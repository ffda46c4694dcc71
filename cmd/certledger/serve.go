package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Taraxa-project/taraxa-certs/ledger"
	"github.com/Taraxa-project/taraxa-certs/metrics"
	"github.com/Taraxa-project/taraxa-certs/rpc"
	"github.com/ethereum/go-ethereum/log"
	gethmetrics "github.com/ethereum/go-ethereum/metrics"
	"github.com/ethereum/go-ethereum/metrics/exp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"
)

var ListenFlag = cli.StringFlag{
	Name:  "listen",
	Usage: "listen address; overrides rpc.listen from the config",
}

// MetricsFlag is also picked up by go-ethereum's metrics package at init,
// which is what turns the registered counters on.
var (
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "collect metrics and log them periodically",
	}
	MetricsAddrFlag = cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "serve expvar metrics at /debug/metrics on this address",
	}
	MetricsIntervalFlag = cli.DurationFlag{
		Name:  "metrics.interval",
		Usage: "how often metrics are logged",
		Value: time.Minute,
	}
)

var serveCommand = cli.Command{
	Name:   "serve",
	Usage:  "serve the ledger over gRPC until interrupted",
	Flags:  []cli.Flag{ListenFlag, MetricsFlag, MetricsAddrFlag, MetricsIntervalFlag},
	Action: serveCmd,
}

func serveCmd(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.IsSet(ListenFlag.Name) {
		cfg.RPC.Listen = ctx.String(ListenFlag.Name)
	}
	l, err := ledger.New(cfg)
	if err != nil {
		return err
	}
	defer l.Close()
	listener, err := net.Listen("tcp", cfg.RPC.Listen)
	if err != nil {
		return err
	}
	server := rpc.NewServer(l)
	log.Info("Serving ledger", "address", listener.Addr())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	group, groupCtx := errgroup.WithContext(context.Background())
	runCtx, stop := context.WithCancel(groupCtx)
	defer stop()
	group.Go(func() error {
		defer stop()
		return server.Serve(listener)
	})
	group.Go(func() error {
		select {
		case sig := <-signals:
			log.Info("Shutting down", "signal", sig)
		case <-runCtx.Done():
		}
		server.GracefulStop()
		return nil
	})
	if gethmetrics.Enabled {
		group.Go(func() error {
			metrics.LogEvery(runCtx, gethmetrics.DefaultRegistry, ctx.Duration(MetricsIntervalFlag.Name), time.Millisecond, log.New("module", "metrics"))
			return nil
		})
	}
	if addr := ctx.String(MetricsAddrFlag.Name); addr != "" {
		metricsServer := &http.Server{Addr: addr, Handler: exp.ExpHandler(gethmetrics.DefaultRegistry)}
		group.Go(func() error {
			if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-runCtx.Done()
			return metricsServer.Close()
		})
	}
	return group.Wait()
}
