package ethereum_test

import (
	"crypto/ecdsa"
	"errors"
	"math/big"

	"tokenrelay/internal/apperr"
	"tokenrelay/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransactionCodec", func() {
	var (
		codec         *ethereum.TransactionCodec
		key           *ecdsa.PrivateKey
		transferData  string
		relayData     string
		rawTx         string
		expectedNonce string
		data          string
		err           error
	)

	BeforeEach(func() {
		var keyErr error
		key, keyErr = crypto.GenerateKey()
		Expect(keyErr).NotTo(HaveOccurred())

		codec = ethereum.NewTransactionCodec(bridgeAddress, tokenAddress, chainID)
		transferData = callData(ethereum.TransferSelector, userAddress, big.NewInt(10))
		relayData = callData(ethereum.RelaySelector, userAddress, big.NewInt(10))
		expectedNonce = "0x0"
		rawTx = signedTransaction(key, 0, tokenAddress, ethereum.GasLimit, transferData)
	})

	JustBeforeEach(func() {
		data, err = codec.DecodeAndValidate(rawTx, expectedNonce)
	})

	When("the transaction is a valid transfer", func() {
		It("should return the call data", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(transferData))
		})
	})

	When("the fields are hand encoded with empty nonce, gas price and value", func() {
		BeforeEach(func() {
			v := new(big.Int).Add(new(big.Int).Mul(chainID, big.NewInt(2)), big.NewInt(35))
			rawTx = encodeFields(
				[]byte{},
				[]byte{},
				common.FromHex("0x0186a0"),
				common.FromHex(tokenAddress),
				[]byte{},
				common.FromHex(transferData),
				v.Bytes(),
				[]byte{0x01},
				[]byte{0x02},
			)
		})

		It("should return the call data of the sixth field", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(transferData))
		})
	})

	When("the transaction is a relay to the bridge", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 0, bridgeAddress, ethereum.GasLimit, relayData)
		})

		It("should accept the bridge as recipient", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(relayData))
		})
	})

	When("a relay is addressed to the token contract", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 0, tokenAddress, ethereum.GasLimit, relayData)
		})

		It("should reject the address", func() {
			Expect(err).To(MatchError("address is invalid"))
		})
	})

	When("a transfer is addressed to the bridge", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 0, bridgeAddress, ethereum.GasLimit, transferData)
		})

		It("should reject the address", func() {
			Expect(err).To(MatchError("address is invalid"))
		})
	})

	When("the nonce matches a non-zero expectation", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 26, tokenAddress, ethereum.GasLimit, transferData)
			expectedNonce = "0x1a"
		})

		It("should succeed", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the nonce does not match", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 3, tokenAddress, ethereum.GasLimit, transferData)
			expectedNonce = "0x2"
		})

		It("should fail with a nonce error", func() {
			Expect(err).To(MatchError("nonce is invalid"))
			Expect(errors.Is(err, apperr.ErrInvalidTransaction)).To(BeTrue())
		})
	})

	When("the gas limit differs from 0x0186a0", func() {
		BeforeEach(func() {
			rawTx = signedTransaction(key, 0, tokenAddress, 21000, transferData)
		})

		It("should fail with a gas limit validation error", func() {
			Expect(err).To(MatchError("gasLimit is invalid"))

			var validationErr *apperr.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	When("the gas price is set", func() {
		BeforeEach(func() {
			rawTx = encodeFields([]byte{}, []byte{0x01}, common.FromHex("0x0186a0"), common.FromHex(tokenAddress),
				[]byte{}, common.FromHex(transferData), []byte{0x01}, []byte{0x01}, []byte{0x01})
		})

		It("should fail with a gas price error", func() {
			Expect(err).To(MatchError("gasPrice is invalid"))
		})
	})

	When("the value is set", func() {
		BeforeEach(func() {
			rawTx = encodeFields([]byte{}, []byte{}, common.FromHex("0x0186a0"), common.FromHex(tokenAddress),
				[]byte{0x05}, common.FromHex(transferData), []byte{0x01}, []byte{0x01}, []byte{0x01})
		})

		It("should fail with a value error", func() {
			Expect(err).To(MatchError("value is invalid"))
		})
	})

	When("the transaction is signed for another chain", func() {
		BeforeEach(func() {
			codec = ethereum.NewTransactionCodec(bridgeAddress, tokenAddress, big.NewInt(1))
		})

		It("should fail with a v error", func() {
			Expect(err).To(MatchError("v is invalid"))
		})
	})

	When("the transaction has eight fields", func() {
		BeforeEach(func() {
			rawTx = encodeFields([]byte{}, []byte{}, common.FromHex("0x0186a0"), common.FromHex(tokenAddress),
				[]byte{}, common.FromHex(transferData), []byte{0x01}, []byte{0x01})
		})

		It("should reject the raw transaction", func() {
			Expect(err).To(MatchError("raw_transaction is invalid"))
		})
	})

	When("the raw transaction is not hex", func() {
		BeforeEach(func() {
			rawTx = "0xnothex"
		})

		It("should reject the raw transaction", func() {
			Expect(err).To(MatchError("raw_transaction is invalid"))
		})
	})

	When("the raw transaction has no 0x prefix", func() {
		BeforeEach(func() {
			rawTx = rawTx[2:]
		})

		It("should reject the raw transaction", func() {
			Expect(err).To(MatchError("raw_transaction is invalid"))
		})
	})
})

var _ = Describe("Scenario: transfer raw transaction end to end", func() {
	It("should decode and then validate the transfer", func() {
		codec := ethereum.NewTransactionCodec(bridgeAddress, tokenAddress, chainID)
		validator := ethereum.NewCallDataValidator(bridgeAddress,
			ethereum.ValueRange{Min: big.NewInt(1), Max: big.NewInt(1000)},
			ethereum.ValueRange{Min: big.NewInt(1), Max: big.NewInt(1000)})

		transferData := callData(ethereum.TransferSelector, userAddress, big.NewInt(7))
		v := new(big.Int).Add(new(big.Int).Mul(chainID, big.NewInt(2)), big.NewInt(36))
		raw := encodeFields([]byte{}, []byte{}, common.FromHex("0x0186a0"), common.FromHex(tokenAddress),
			[]byte{}, common.FromHex(transferData), v.Bytes(), []byte{0x01}, []byte{0x02})

		data, err := codec.DecodeAndValidate(raw, "0x0")
		Expect(err).NotTo(HaveOccurred())
		Expect(validator.ValidateTransfer(data, userAddress)).To(Succeed())
	})
})
