package main

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/config"
	"github.com/Taraxa-project/taraxa-certs/ledger"
	"github.com/Taraxa-project/taraxa-certs/rpc"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"
)

var (
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "hex secp256k1 private key signing the operation",
	}
	CallerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "caller address presented to the ledger when no --key is given",
	}
)

type backend interface {
	rpc.Backend
	io.Closer
}

func openBackend(ctx *cli.Context) (backend, error) {
	cfg, err := setup(ctx)
	if err != nil {
		return nil, err
	}
	return openBackendWith(cfg, ctx.GlobalString(RemoteFlag.Name))
}

func openBackendWith(cfg *config.Config, remote string) (backend, error) {
	if remote != "" {
		log.Debug("Using remote ledger", "address", remote)
		client, err := rpc.Dial(remote, cfg.RPC.Timeout())
		if err != nil {
			return nil, err
		}
		return client, nil
	}
	l, err := ledger.New(cfg)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func loadKey(ctx *cli.Context) (*ecdsa.PrivateKey, error) {
	hex := ctx.String(KeyFlag.Name)
	if hex == "" {
		return nil, nil
	}
	key, err := crypto.HexToECDSA(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", KeyFlag.Name, err)
	}
	return key, nil
}

// credential signs op when a key is given, else presents the bare caller.
func credential(ctx *cli.Context, op common.Hash) (auth.Credential, error) {
	key, err := loadKey(ctx)
	if err != nil {
		return auth.Credential{}, err
	}
	if key != nil {
		return auth.Sign(key, op)
	}
	return auth.Credential{Caller: common.HexToAddress(ctx.String(CallerFlag.Name))}, nil
}

func printJSON(ctx *cli.Context, v interface{}) error {
	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
