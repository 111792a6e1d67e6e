package ethereum

import (
	"bytes"
	"encoding/hex"
	"math/big"

	"tokenrelay/internal/apperr"

	"github.com/ethereum/go-ethereum/rlp"
)

// GasLimit is the only gas limit accepted on raw transactions (0x0186a0).
const GasLimit = 100000

// Field positions of a legacy signed transaction.
const (
	nonceField = iota
	gasPriceField
	gasLimitField
	toField
	valueField
	dataField
	vField
	rField
	sField
	transactionFields
)

var gasLimitBytes = big.NewInt(GasLimit).Bytes()

// TransactionCodec decodes signed raw transactions and checks them against the
// fixed parameters of the private chain.
type TransactionCodec struct {
	bridgeAddress string
	tokenAddress  string
	validV        []*big.Int
}

// NewTransactionCodec accepts the EIP-155 v values of chainID.
func NewTransactionCodec(bridgeAddress, tokenAddress string, chainID *big.Int) *TransactionCodec {
	base := new(big.Int).Mul(chainID, big.NewInt(2))
	return NewTransactionCodecWithV(bridgeAddress, tokenAddress,
		new(big.Int).Add(base, big.NewInt(35)),
		new(big.Int).Add(base, big.NewInt(36)))
}

func NewTransactionCodecWithV(bridgeAddress, tokenAddress string, validV ...*big.Int) *TransactionCodec {
	return &TransactionCodec{
		bridgeAddress: CanonicalAddress(bridgeAddress),
		tokenAddress:  CanonicalAddress(tokenAddress),
		validV:        validV,
	}
}

// DecodeAndValidate decodes rawTransaction and returns its call data as hex without prefix.
func (c *TransactionCodec) DecodeAndValidate(rawTransaction, expectedNonce string) (string, error) {
	fields, err := decodeFields(rawTransaction)
	if err != nil {
		return "", err
	}

	nonce, err := ParseHexInt(expectedNonce)
	if err != nil || new(big.Int).SetBytes(fields[nonceField]).Cmp(nonce) != 0 {
		return "", apperr.InvalidTransaction("nonce is invalid")
	}

	if len(fields[gasPriceField]) != 0 {
		return "", apperr.InvalidTransaction("gasPrice is invalid")
	}

	if !bytes.Equal(fields[gasLimitField], gasLimitBytes) {
		return "", apperr.InvalidTransaction("gasLimit is invalid")
	}

	data := hex.EncodeToString(fields[dataField])

	expectedTo := c.tokenAddress
	if SelectorOf(data) == RelaySelector {
		expectedTo = c.bridgeAddress
	}
	if hex.EncodeToString(fields[toField]) != expectedTo {
		return "", apperr.InvalidTransaction("address is invalid")
	}

	if len(fields[valueField]) != 0 {
		return "", apperr.InvalidTransaction("value is invalid")
	}

	if !c.isValidV(fields[vField]) {
		return "", apperr.InvalidTransaction("v is invalid")
	}

	return data, nil
}

func (c *TransactionCodec) isValidV(raw []byte) bool {
	v := new(big.Int).SetBytes(raw)
	for _, valid := range c.validV {
		if v.Cmp(valid) == 0 {
			return true
		}
	}
	return false
}

func decodeFields(rawTransaction string) ([][]byte, error) {
	if !has0xPrefix(rawTransaction) {
		return nil, apperr.InvalidTransaction("raw_transaction is invalid")
	}

	encoded, err := hex.DecodeString(rawTransaction[2:])
	if err != nil {
		return nil, apperr.InvalidTransaction("raw_transaction is invalid")
	}

	var fields [][]byte
	if err := rlp.DecodeBytes(encoded, &fields); err != nil {
		return nil, apperr.InvalidTransaction("raw_transaction is invalid")
	}

	if len(fields) != transactionFields {
		return nil, apperr.InvalidTransaction("raw_transaction is invalid")
	}

	return fields, nil
}
