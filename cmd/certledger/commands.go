package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/merkle"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"gopkg.in/urfave/cli.v1"
)

var (
	IDFlag = cli.StringFlag{
		Name:  "id",
		Usage: "certificate id; a random UUID is assigned on issue when omitted",
	}
	IssuerFlag = cli.StringFlag{
		Name:  "issuer",
		Usage: "issuer address; defaults to the --key address",
	}
	OwnerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "owner address",
	}
	URIFlag = cli.StringFlag{
		Name:  "uri",
		Usage: "metadata URI",
	}
	ReasonFlag = cli.StringFlag{
		Name:  "reason",
		Usage: "revocation reason",
	}
	RootFlag = cli.StringFlag{
		Name:  "root",
		Usage: "hex Merkle root",
	}
)

var issueCommand = cli.Command{
	Name:   "issue",
	Usage:  "issue a certificate",
	Flags:  []cli.Flag{IDFlag, IssuerFlag, OwnerFlag, URIFlag, KeyFlag, CallerFlag},
	Action: issueCmd,
}

func issueCmd(ctx *cli.Context) error {
	id := ctx.String(IDFlag.Name)
	if id == "" {
		id = uuid.New().String()
	}
	key, err := loadKey(ctx)
	if err != nil {
		return err
	}
	var issuer common.Address
	switch {
	case ctx.IsSet(IssuerFlag.Name):
		issuer = common.HexToAddress(ctx.String(IssuerFlag.Name))
	case key != nil:
		issuer = crypto.PubkeyToAddress(key.PublicKey)
	default:
		issuer = common.HexToAddress(ctx.String(CallerFlag.Name))
	}
	owner := common.HexToAddress(ctx.String(OwnerFlag.Name))
	uri := ctx.String(URIFlag.Name)
	cred, err := credential(ctx, certs.IssueOperation(id, issuer, owner, uri))
	if err != nil {
		return err
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	if err := b.Issue(id, issuer, owner, uri, cred); err != nil {
		return err
	}
	cert, err := b.Get(id)
	if err != nil {
		return err
	}
	return printJSON(ctx, cert)
}

var revokeCommand = cli.Command{
	Name:   "revoke",
	Usage:  "revoke a certificate",
	Flags:  []cli.Flag{IDFlag, ReasonFlag, KeyFlag, CallerFlag},
	Action: revokeCmd,
}

func revokeCmd(ctx *cli.Context) error {
	id, err := requireID(ctx)
	if err != nil {
		return err
	}
	reason := ctx.String(ReasonFlag.Name)
	cred, err := credential(ctx, certs.RevokeOperation(id, reason))
	if err != nil {
		return err
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	if err := b.Revoke(id, reason, cred); err != nil {
		return err
	}
	cert, err := b.Get(id)
	if err != nil {
		return err
	}
	return printJSON(ctx, cert)
}

var getCommand = cli.Command{
	Name:   "get",
	Usage:  "print a certificate",
	Flags:  []cli.Flag{IDFlag},
	Action: getCmd,
}

func getCmd(ctx *cli.Context) error {
	id, err := requireID(ctx)
	if err != nil {
		return err
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	cert, err := b.Get(id)
	if err != nil {
		return err
	}
	return printJSON(ctx, cert)
}

var isRevokedCommand = cli.Command{
	Name:   "is-revoked",
	Usage:  "print whether a certificate is revoked",
	Flags:  []cli.Flag{IDFlag},
	Action: isRevokedCmd,
}

func isRevokedCmd(ctx *cli.Context) error {
	id, err := requireID(ctx)
	if err != nil {
		return err
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	revoked, err := b.IsRevoked(id)
	if err != nil {
		return err
	}
	return printJSON(ctx, revoked)
}

var verifyCommand = cli.Command{
	Name:      "verify",
	Usage:     "verify a batch of certificate ids",
	ArgsUsage: "<id>...",
	Action:    verifyCmd,
}

func verifyCmd(ctx *cli.Context) error {
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	report, err := b.VerifyCertificates(ctx.Args())
	if err != nil {
		return err
	}
	return printJSON(ctx, report)
}

var verifyMerkleCommand = cli.Command{
	Name:      "verify-merkle",
	Usage:     "verify a batch of Merkle proofs against a root",
	ArgsUsage: "<proofs.json | ->",
	Flags:     []cli.Flag{RootFlag},
	Action:    verifyMerkleCmd,
}

func verifyMerkleCmd(ctx *cli.Context) error {
	root, err := parseHash(ctx.String(RootFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", RootFlag.Name, err)
	}
	proofs, err := readProofs(ctx.Args().First())
	if err != nil {
		return err
	}
	b, err := openBackend(ctx)
	if err != nil {
		return err
	}
	defer b.Close()
	results, err := b.VerifyMerkle(root, proofs)
	if err != nil {
		return err
	}
	return printJSON(ctx, results)
}

var foldCommand = cli.Command{
	Name:      "fold",
	Usage:     "compute the root a leaf and its siblings fold to",
	ArgsUsage: "<leaf> [sibling]...",
	Action:    foldCmd,
}

func foldCmd(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() == 0 {
		return fmt.Errorf("missing leaf")
	}
	hashes := make([]common.Hash, ctx.NArg())
	for i, arg := range ctx.Args() {
		if hashes[i], err = parseHash(arg); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	hasher, err := merkle.HasherByName(cfg.MerkleHash)
	if err != nil {
		return err
	}
	return printJSON(ctx, merkle.NewVerifier(hasher).Fold(hashes[0], hashes[1:]))
}

var keygenCommand = cli.Command{
	Name:   "keygen",
	Usage:  "generate a secp256k1 key for signing ledger operations",
	Action: keygenCmd,
}

func keygenCmd(ctx *cli.Context) error {
	key, err := crypto.GenerateKey()
	if err != nil {
		return err
	}
	return printJSON(ctx, struct {
		Address common.Address `json:"address"`
		Key     string         `json:"key"`
	}{crypto.PubkeyToAddress(key.PublicKey), common.Bytes2Hex(crypto.FromECDSA(key))})
}

func requireID(ctx *cli.Context) (string, error) {
	if !ctx.IsSet(IDFlag.Name) {
		return "", fmt.Errorf("missing --%s", IDFlag.Name)
	}
	return ctx.String(IDFlag.Name), nil
}

// parseHash accepts 32 hex bytes with or without the 0x prefix.
func parseHash(s string) (ret common.Hash, err error) {
	b := common.FromHex(s)
	if len(b) != common.HashLength {
		return ret, fmt.Errorf("want %d bytes, got %d", common.HashLength, len(b))
	}
	return common.BytesToHash(b), nil
}

func readProofs(file string) (ret []merkle.Proof, err error) {
	var b []byte
	switch file {
	case "":
		return nil, fmt.Errorf("missing proofs file")
	case "-":
		b, err = ioutil.ReadAll(os.Stdin)
	default:
		b, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, &ret); err != nil {
		return nil, fmt.Errorf("decoding proofs: %w", err)
	}
	return ret, nil
}
