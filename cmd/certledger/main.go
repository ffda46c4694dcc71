package main

import (
	"fmt"
	"os"

	"github.com/Taraxa-project/taraxa-certs/config"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"
)

var (
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "JSON config file; built-in defaults when omitted",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level 0-5 (silent, error, warn, info, debug, trace); overrides the config",
		Value: -1,
	}
	RemoteFlag = cli.StringFlag{
		Name:  "remote",
		Usage: "address of a running ledger server; the local store is used when empty",
	}
)

var app = cli.NewApp()

func init() {
	app.Name = "certledger"
	app.Usage = "certificate ledger and batch verifier"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		ConfigFlag,
		VerbosityFlag,
		RemoteFlag,
	}
	app.Commands = []cli.Command{
		issueCommand,
		revokeCommand,
		getCommand,
		isRevokedCommand,
		verifyCommand,
		verifyMerkleCommand,
		foldCommand,
		keygenCommand,
		serveCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and installs the log handler.
func setup(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if file := ctx.GlobalString(ConfigFlag.Name); file != "" {
		var err error
		if cfg, err = config.Load(file); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	if v := ctx.GlobalInt(VerbosityFlag.Name); v >= 0 {
		cfg.Verbosity = v
	}
	glogger := log.NewGlogHandler(log.StreamHandler(os.Stderr, log.TerminalFormat(false)))
	glogger.Verbosity(log.Lvl(cfg.Verbosity))
	log.Root().SetHandler(glogger)
	return cfg, nil
}
