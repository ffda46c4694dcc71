package rpc

import (
	"context"
	"time"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"github.com/Taraxa-project/taraxa-certs/merkle"
	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
)

// Client is a Backend served by a remote ledger. Errors unwrap to the same
// sentinels the local ledger returns.
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

func Dial(address string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	conn, err := grpc.Dial(address, append([]grpc.DialOption{grpc.WithInsecure()}, opts...)...)
	if err != nil {
		return nil, err
	}
	return NewClient(conn, timeout), nil
}

// NewClient wraps conn; a zero timeout means calls never time out.
func NewClient(conn *grpc.ClientConn, timeout time.Duration) *Client {
	return &Client{conn: conn, timeout: timeout}
}

func (this *Client) invoke(method string, in, out interface{}) error {
	ctx, cancel := context.Background(), func() {}
	if this.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, this.timeout)
	}
	defer cancel()
	return fromStatus(this.conn.Invoke(ctx, fullMethod(method), in, out, grpc.CallContentSubtype(codecName)))
}

func (this *Client) Issue(id string, issuer, owner common.Address, metadataURI string, cred auth.Credential) error {
	return this.invoke(methodIssue, &IssueRequest{id, issuer, owner, metadataURI, cred}, new(Empty))
}

func (this *Client) Revoke(id, reason string, cred auth.Credential) error {
	return this.invoke(methodRevoke, &RevokeRequest{id, reason, cred}, new(Empty))
}

func (this *Client) IsRevoked(id string) (bool, error) {
	var resp BoolResponse
	err := this.invoke(methodIsRevoked, &IDRequest{id}, &resp)
	return resp.Value, err
}

func (this *Client) Get(id string) (ret certs.Certificate, err error) {
	err = this.invoke(methodGet, &IDRequest{id}, &ret)
	return
}

func (this *Client) VerifyCertificates(ids []string) (ret certs.BatchVerificationResult, err error) {
	if err = this.invoke(methodVerifyCertificates, &VerifyCertificatesRequest{ids}, &ret); err != nil {
		return certs.BatchVerificationResult{}, err
	}
	return
}

func (this *Client) VerifyMerkle(root common.Hash, proofs []merkle.Proof) ([]merkle.Result, error) {
	var resp VerifyMerkleResponse
	if err := this.invoke(methodVerifyMerkle, &VerifyMerkleRequest{root, proofs}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (this *Client) Close() error {
	return this.conn.Close()
}
