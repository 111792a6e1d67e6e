package ethereum

import (
	"bytes"
	"encoding/hex"
	"math/big"

	"tokenrelay/internal/apperr"
)

const (
	TransferSelector = "a9059cbb"
	ApproveSelector  = "095ea7b3"
	RelaySelector    = "eeec0e24"
)

// Layout of the call data the platform issues: a 4 byte selector followed by
// two 32 byte words (an address and an amount).
const (
	selectorLength  = 4
	wordLength      = 32
	addressLength   = 20
	addressPadding  = wordLength - addressLength
	firstWordStart  = selectorLength
	secondWordStart = firstWordStart + wordLength
	callDataLength  = secondWordStart + wordLength

	// CallDataHexLength is the length of valid call data in hex characters.
	CallDataHexLength = callDataLength * 2
)

// CallData is call data split along the fixed-width layout above.
type CallData struct {
	Selector    string
	AddressWord []byte
	Value       *big.Int
}

// Address returns the low 20 bytes of the address word as a canonical address.
func (c *CallData) Address() string {
	return hex.EncodeToString(c.AddressWord[addressPadding:])
}

// HasCleanAddressPadding reports whether the 12 high bytes of the address word are zero.
func (c *CallData) HasCleanAddressPadding() bool {
	return bytes.Equal(c.AddressWord[:addressPadding], make([]byte, addressPadding))
}

// DecodeCallData splits hex call data (no 0x prefix) into selector, address word and value.
func DecodeCallData(data string) (*CallData, error) {
	if len(data) != CallDataHexLength {
		return nil, apperr.NewValidationError("data is invalid")
	}

	raw, err := hex.DecodeString(data)
	if err != nil {
		return nil, apperr.NewValidationError("data is invalid")
	}

	return &CallData{
		Selector:    hex.EncodeToString(raw[:selectorLength]),
		AddressWord: raw[firstWordStart:secondWordStart],
		Value:       new(big.Int).SetBytes(raw[secondWordStart:callDataLength]),
	}, nil
}

// SelectorOf returns the method selector of hex call data, or "" when data is too short.
func SelectorOf(data string) string {
	if len(data) < selectorLength*2 {
		return ""
	}
	return data[:selectorLength*2]
}

// ValueRange is an inclusive numeric range.
type ValueRange struct {
	Min *big.Int
	Max *big.Int
}

func (r ValueRange) Contains(v *big.Int) bool {
	if v == nil {
		return false
	}
	if r.Min != nil && v.Cmp(r.Min) < 0 {
		return false
	}
	if r.Max != nil && v.Cmp(r.Max) > 0 {
		return false
	}
	return true
}

// CallDataValidator checks call data of the three token operations the platform issues.
type CallDataValidator struct {
	bridgeAddress  string
	tipValue       ValueRange
	tokenSendValue ValueRange
}

func NewCallDataValidator(bridgeAddress string, tipValue, tokenSendValue ValueRange) *CallDataValidator {
	return &CallDataValidator{
		bridgeAddress:  CanonicalAddress(bridgeAddress),
		tipValue:       tipValue,
		tokenSendValue: tokenSendValue,
	}
}

// ValidateTransfer validates transfer(to, value) call data sent to expectedToAddress.
func (v *CallDataValidator) ValidateTransfer(data, expectedToAddress string) error {
	callData, err := v.decode(data, TransferSelector)
	if err != nil {
		return err
	}

	if callData.Address() != CanonicalAddress(expectedToAddress) {
		return apperr.NewValidationError("to_address is invalid")
	}

	if !v.tipValue.Contains(callData.Value) {
		return apperr.NewValidationError("tip_value is invalid")
	}

	return nil
}

// ValidateApprove validates approve(spender, value) call data. A zero value resets an allowance.
func (v *CallDataValidator) ValidateApprove(data string) error {
	callData, err := v.decode(data, ApproveSelector)
	if err != nil {
		return err
	}

	if callData.Address() != v.bridgeAddress {
		return apperr.NewValidationError("spender is invalid")
	}

	if callData.Value.Sign() != 0 && !v.tokenSendValue.Contains(callData.Value) {
		return apperr.NewValidationError("value is invalid")
	}

	return nil
}

// ValidateRelay validates relay(recipient, value) call data.
func (v *CallDataValidator) ValidateRelay(data string) error {
	callData, err := v.decode(data, RelaySelector)
	if err != nil {
		return err
	}

	if !callData.HasCleanAddressPadding() {
		return apperr.NewValidationError("recipient is invalid")
	}

	if !v.tokenSendValue.Contains(callData.Value) {
		return apperr.NewValidationError("value is invalid")
	}

	return nil
}

func (v *CallDataValidator) decode(data, selector string) (*CallData, error) {
	callData, err := DecodeCallData(data)
	if err != nil {
		return nil, err
	}

	if callData.Selector != selector {
		return nil, apperr.NewValidationError("method is invalid")
	}

	return callData, nil
}
