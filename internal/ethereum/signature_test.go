package ethereum_test

import (
	"crypto/ecdsa"
	"math/big"

	"tokenrelay/internal/ethereum"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SignatureVerifier", func() {
	var (
		verifier *ethereum.SignatureVerifier
		key      *ecdsa.PrivateKey
		address  string
	)

	BeforeEach(func() {
		var err error
		key, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		address = crypto.PubkeyToAddress(key.PublicKey).Hex()
		verifier = ethereum.NewSignatureVerifier(chainID)
	})

	Describe("VerifyMessageSignature", func() {
		var (
			message   string
			signature string
		)

		BeforeEach(func() {
			message = "0x3333333333333333333333333333333333333333"
			sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
			Expect(err).NotTo(HaveOccurred())
			sig[crypto.RecoveryIDOffset] += 27
			signature = hexutil.Encode(sig)
		})

		It("should accept the signer's address", func() {
			Expect(verifier.VerifyMessageSignature(message, signature, address)).To(Succeed())
		})

		It("should accept a canonical form of the signer's address", func() {
			Expect(verifier.VerifyMessageSignature(message, signature, ethereum.CanonicalAddress(address))).To(Succeed())
		})

		It("should reject another address", func() {
			Expect(verifier.VerifyMessageSignature(message, signature, userAddress)).To(MatchError("Signature is invalid"))
		})

		It("should reject a signature over another message", func() {
			Expect(verifier.VerifyMessageSignature("other", signature, address)).To(MatchError("Signature is invalid"))
		})

		It("should reject a truncated signature", func() {
			Expect(verifier.VerifyMessageSignature(message, signature[:100], address)).To(MatchError("Signature is invalid"))
		})
	})

	Describe("VerifyTransactionSignature", func() {
		var rawTx string

		BeforeEach(func() {
			data := callData(ethereum.TransferSelector, userAddress, big.NewInt(1))
			rawTx = signedTransaction(key, 0, tokenAddress, ethereum.GasLimit, data)
		})

		It("should accept the signer's address", func() {
			Expect(verifier.VerifyTransactionSignature(rawTx, address)).To(Succeed())
		})

		It("should reject another address", func() {
			Expect(verifier.VerifyTransactionSignature(rawTx, userAddress)).To(MatchError("Signature is invalid"))
		})

		It("should reject an undecodable transaction", func() {
			Expect(verifier.VerifyTransactionSignature("0x01", address)).To(MatchError("raw_transaction is invalid"))
		})
	})
})
