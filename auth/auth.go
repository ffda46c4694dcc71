// Package auth decides whether a call was authorized by a given identity.
//
// Every authorizable operation is reduced to a digest (see OperationDigest);
// credentials are checked against the identity the operation requires and
// that digest. How a credential proves the identity is up to the Authorizer.
package auth

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/Taraxa-project/taraxa-certs/util"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

const ErrUnauthorized = util.ErrorString("unauthorized")

// [R || S || V]
const signatureLength = 65

// Credential is what a caller presents with a mutating operation.
type Credential struct {
	Caller    common.Address `json:"caller"`
	Signature hexutil.Bytes  `json:"signature,omitempty"`
}

type Authorizer interface {
	// RequireAuth fails with ErrUnauthorized unless cred proves identity
	// for the operation with digest op.
	RequireAuth(cred Credential, identity common.Address, op common.Hash) error
}

// OperationDigest is the Keccak-256 of the RLP list [method, args...].
// args must be RLP-encodable (strings, addresses, unsigned integers).
func OperationDigest(method string, args ...interface{}) common.Hash {
	enc, err := rlp.EncodeToBytes(append([]interface{}{method}, args...))
	util.PanicOn(err)
	return crypto.Keccak256Hash(enc)
}

// Sign produces a credential for op signed by key.
func Sign(key *ecdsa.PrivateKey, op common.Hash) (Credential, error) {
	sig, err := crypto.Sign(op[:], key)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Caller: crypto.PubkeyToAddress(key.PublicKey), Signature: sig}, nil
}

// AllowAll accepts every credential. Only for hosts that authenticate
// callers before the call reaches the ledger, and for tests.
type AllowAll struct{}

func (AllowAll) RequireAuth(Credential, common.Address, common.Hash) error {
	return nil
}

// CallerAuthorizer trusts the caller identity reported by the host.
type CallerAuthorizer struct{}

func (CallerAuthorizer) RequireAuth(cred Credential, identity common.Address, _ common.Hash) error {
	if cred.Caller != identity {
		return unauthorized(cred.Caller, identity)
	}
	return nil
}

// SignatureAuthorizer requires a secp256k1 signature over the operation
// digest by the key behind identity.
type SignatureAuthorizer struct{}

func (SignatureAuthorizer) RequireAuth(cred Credential, identity common.Address, op common.Hash) error {
	if len(cred.Signature) != signatureLength {
		return fmt.Errorf("%w: malformed signature", ErrUnauthorized)
	}
	pub, err := crypto.SigToPub(op[:], cred.Signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	signer := crypto.PubkeyToAddress(*pub)
	if signer != identity {
		return unauthorized(signer, identity)
	}
	if cred.Caller != (common.Address{}) && cred.Caller != signer {
		return fmt.Errorf("%w: caller %s did not sign", ErrUnauthorized, cred.Caller.Hex())
	}
	return nil
}

var registry = map[string]Authorizer{
	"allow-all": AllowAll{},
	"caller":    CallerAuthorizer{},
	"signature": SignatureAuthorizer{},
}

func ByName(name string) (Authorizer, error) {
	if ret, ok := registry[name]; ok {
		return ret, nil
	}
	return nil, fmt.Errorf("unknown authorizer: %q", name)
}

func unauthorized(got, want common.Address) error {
	return fmt.Errorf("%w: %s is not %s", ErrUnauthorized, got.Hex(), want.Hex())
}
