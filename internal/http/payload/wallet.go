package payload

import (
	"math/big"

	"tokenrelay/internal/core"

	"github.com/jellydator/validation"
)

type SendTokensRequest struct {
	RecipientEthAddress string `json:"recipient_eth_address"`
	SendValue           string `json:"send_value"`
	AccessToken         string `json:"access_token"`
	PinCode             string `json:"pin_code"`
}

func (s *SendTokensRequest) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.RecipientEthAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.SendValue, validation.Required, validation.Match(uintRegex)),
		validation.Field(&s.AccessToken, validation.Required),
		validation.Field(&s.PinCode, validation.Required, validation.Match(pinCodeRegex)),
	)
}

// ToCore builds the core request. The send value must have passed Validate.
func (s *SendTokensRequest) ToCore(userID, fromAddress string) core.SendTokensRequest {
	value, _ := new(big.Int).SetString(s.SendValue, 10)
	return core.SendTokensRequest{
		UserID:           userID,
		FromAddress:      fromAddress,
		RecipientAddress: s.RecipientEthAddress,
		SendValue:        value,
		PinCode:          s.PinCode,
		AccessToken:      s.AccessToken,
	}
}

type TipRequest struct {
	RecipientEthAddress string `json:"recipient_eth_address"`
	TipValue            string `json:"tip_value"`
	AccessToken         string `json:"access_token"`
	PinCode             string `json:"pin_code"`
}

func (t *TipRequest) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.RecipientEthAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.TipValue, validation.Required, validation.Match(uintRegex)),
		validation.Field(&t.AccessToken, validation.Required),
		validation.Field(&t.PinCode, validation.Required, validation.Match(pinCodeRegex)),
	)
}

func (t *TipRequest) ToCore(userID, fromAddress string) core.TipRequest {
	value, _ := new(big.Int).SetString(t.TipValue, 10)
	return core.TipRequest{
		UserID:           userID,
		FromAddress:      fromAddress,
		RecipientAddress: t.RecipientEthAddress,
		TipValue:         value,
		PinCode:          t.PinCode,
		AccessToken:      t.AccessToken,
	}
}

type RawTransactionRequest struct {
	RawTransaction string `json:"raw_transaction"`
	ToEthAddress   string `json:"to_eth_address,omitempty"`
}

func (t *RawTransactionRequest) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.RawTransaction, validation.Required, validation.Match(hexDataRegex)),
		validation.Field(&t.ToEthAddress, validation.Match(addressRegex)),
	)
}

func (t *RawTransactionRequest) ToCore(fromAddress string) core.RawTransactionRequest {
	return core.RawTransactionRequest{
		FromAddress:    fromAddress,
		RawTransaction: t.RawTransaction,
		ToAddress:      t.ToEthAddress,
	}
}

type BindAddressRequest struct {
	EthAddress string `json:"eth_address"`
	Signature  string `json:"signature"`
}

func (b *BindAddressRequest) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.EthAddress, validation.Required, validation.Match(addressRegex)),
		validation.Field(&b.Signature, validation.Required, validation.Match(signatureRegex)),
	)
}

func (b *BindAddressRequest) ToCore(userID string) core.BindAddressRequest {
	return core.BindAddressRequest{
		UserID:    userID,
		Address:   b.EthAddress,
		Signature: b.Signature,
	}
}
