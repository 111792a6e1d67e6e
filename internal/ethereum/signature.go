package ethereum

import (
	"encoding/hex"
	"math/big"

	"tokenrelay/internal/apperr"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const signatureLength = 65

// SignatureVerifier recovers signing addresses from personal messages and
// signed raw transactions.
type SignatureVerifier struct {
	signer types.Signer
}

func NewSignatureVerifier(chainID *big.Int) *SignatureVerifier {
	return &SignatureVerifier{
		signer: types.LatestSignerForChainID(chainID),
	}
}

// VerifyMessageSignature checks that signature over the EIP-191 personal message
// encoding of message was produced by expectedAddress.
func (s *SignatureVerifier) VerifyMessageSignature(message, signature, expectedAddress string) error {
	sig, err := decodeSignature(signature)
	if err != nil {
		return apperr.NewValidationError("Signature is invalid")
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return apperr.NewValidationError("Signature is invalid")
	}

	if CanonicalAddress(crypto.PubkeyToAddress(*pub).Hex()) != CanonicalAddress(expectedAddress) {
		return apperr.NewValidationError("Signature is invalid")
	}

	return nil
}

// VerifyTransactionSignature checks that rawTransaction was signed by expectedAddress.
func (s *SignatureVerifier) VerifyTransactionSignature(rawTransaction, expectedAddress string) error {
	if !has0xPrefix(rawTransaction) {
		return apperr.InvalidTransaction("raw_transaction is invalid")
	}

	encoded, err := hex.DecodeString(rawTransaction[2:])
	if err != nil {
		return apperr.InvalidTransaction("raw_transaction is invalid")
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(encoded); err != nil {
		return apperr.InvalidTransaction("raw_transaction is invalid")
	}

	from, err := types.Sender(s.signer, tx)
	if err != nil {
		return apperr.NewValidationError("Signature is invalid")
	}

	if CanonicalAddress(from.Hex()) != CanonicalAddress(expectedAddress) {
		return apperr.NewValidationError("Signature is invalid")
	}

	return nil
}

// decodeSignature accepts [R || S || V] with V either 0/1 or 27/28.
func decodeSignature(signature string) ([]byte, error) {
	if has0xPrefix(signature) {
		signature = signature[2:]
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return nil, err
	}
	if len(sig) != signatureLength {
		return nil, apperr.NewValidationError("Signature is invalid")
	}

	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	return sig, nil
}
