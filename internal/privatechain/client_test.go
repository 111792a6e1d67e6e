package privatechain_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"

	"tokenrelay/internal/privatechain"
	"tokenrelay/internal/privatechain/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	bridgeAddress = "0x1111111111111111111111111111111111111111"
	userAddress   = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"
)

var _ = Describe("Client", func() {
	var (
		fakeSender *fake.Sender
		client     *privatechain.Client
		ctx        context.Context
		fakeErr    error
	)

	BeforeEach(func() {
		fakeSender = new(fake.Sender)
		client = privatechain.NewClient(fakeSender, bridgeAddress)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("GetTransactionCount", func() {
		It("should send the canonical address and return the count", func() {
			fakeSender.SendReturns(json.RawMessage(`"0x2a"`), nil)

			count, err := client.GetTransactionCount(ctx, userAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal("0x2a"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathGetTransactionCount))
			Expect(payload).To(Equal(map[string]string{
				"from_user_eth_address": "abcdef0123456789abcdef0123456789abcdef01",
			}))
		})

		It("should return the sender error", func() {
			fakeSender.SendReturns(nil, fakeErr)

			_, err := client.GetTransactionCount(ctx, userAddress)
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("GetAllowance", func() {
		It("should ask for the bridge allowance", func() {
			fakeSender.SendReturns(json.RawMessage(`"0x64"`), nil)

			allowance, err := client.GetAllowance(ctx, userAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(allowance.Int64()).To(BeEquivalentTo(100))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathAllowance))
			Expect(payload).To(HaveKeyWithValue("spender_eth_address", "1111111111111111111111111111111111111111"))
		})

		It("should treat an empty quantity as zero", func() {
			fakeSender.SendReturns(json.RawMessage(`"0x"`), nil)

			allowance, err := client.GetAllowance(ctx, userAddress)
			Expect(err).NotTo(HaveOccurred())
			Expect(allowance.Sign()).To(BeZero())
		})

		It("should fail on a non hex quantity", func() {
			fakeSender.SendReturns(json.RawMessage(`"zz"`), nil)

			_, err := client.GetAllowance(ctx, userAddress)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Approve", func() {
		It("should encode nonce and value", func() {
			fakeSender.SendReturns(json.RawMessage(`"0xhash"`), nil)

			hash, err := client.Approve(ctx, userAddress, big.NewInt(255), 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("0xhash"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathApprove))
			Expect(payload).To(Equal(map[string]string{
				"from_user_eth_address": "abcdef0123456789abcdef0123456789abcdef01",
				"spender_eth_address":   "1111111111111111111111111111111111111111",
				"nonce":                 "0x7",
				"value":                 "00000000000000000000000000000000000000000000000000000000000000ff",
			}))
		})

		It("should fail when no hash comes back", func() {
			fakeSender.SendReturns(json.RawMessage(`null`), nil)

			_, err := client.Approve(ctx, userAddress, big.NewInt(1), 0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Relay", func() {
		It("should send recipient and amount", func() {
			fakeSender.SendReturns(json.RawMessage(`"0xrelay"`), nil)

			hash, err := client.Relay(ctx, userAddress, bridgeAddress, big.NewInt(1), 8)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("0xrelay"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathRelay))
			Expect(payload).To(HaveKeyWithValue("recipient_eth_address", "1111111111111111111111111111111111111111"))
			Expect(payload).To(HaveKeyWithValue("nonce", "0x8"))
			Expect(payload).To(HaveKeyWithValue("amount", "0000000000000000000000000000000000000000000000000000000000000001"))
		})
	})

	Describe("Tip", func() {
		It("should send recipient and value", func() {
			fakeSender.SendReturns(json.RawMessage(`"0xtip"`), nil)

			hash, err := client.Tip(ctx, userAddress, bridgeAddress, big.NewInt(2), 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("0xtip"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathTip))
			Expect(payload).To(HaveKeyWithValue("to_eth_address", "1111111111111111111111111111111111111111"))
			Expect(payload).To(HaveKeyWithValue("nonce", "0x3"))
			Expect(payload).To(HaveKeyWithValue("value", "0000000000000000000000000000000000000000000000000000000000000002"))
		})
	})

	Describe("GetBlockByNumber", func() {
		It("should request the block by hex number", func() {
			fakeSender.SendReturns(json.RawMessage(`{"number":"0x10","hash":"0xabc","timestamp":"0x5f5e100"}`), nil)

			block, err := client.GetBlockByNumber(ctx, 16)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Hash).To(Equal("0xabc"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathGetBlockByNumber))
			Expect(payload).To(HaveKeyWithValue("block_number", "0x10"))
		})

		It("should return nil for a missing block", func() {
			fakeSender.SendReturns(json.RawMessage(`null`), nil)

			block, err := client.GetBlockByNumber(ctx, 16)
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(BeNil())
		})
	})

	Describe("BlockNumber", func() {
		It("should decode the hex block number", func() {
			fakeSender.SendReturns(json.RawMessage(`"0x10"`), nil)

			n, err := client.BlockNumber(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeEquivalentTo(16))
		})
	})

	Describe("Receipt", func() {
		It("should return nil while there is no receipt", func() {
			fakeSender.SendReturns(json.RawMessage(`null`), nil)

			receipt, err := client.Receipt(ctx, "0xhash")
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt).To(BeNil())
		})

		It("should decode the receipt logs", func() {
			fakeSender.SendReturns(json.RawMessage(`{"status":"0x1","logs":[{"type":"mined"}]}`), nil)

			receipt, err := client.Receipt(ctx, "0xhash")
			Expect(err).NotTo(HaveOccurred())
			Expect(receipt.Status).To(Equal("0x1"))
			Expect(receipt.Logs).To(ConsistOf(privatechain.ReceiptLog{Type: privatechain.ReceiptLogMined}))
		})
	})

	Describe("SendRawTransaction", func() {
		It("should pass the raw transaction through", func() {
			fakeSender.SendReturns(json.RawMessage(`"0xsent"`), nil)

			hash, err := client.SendRawTransaction(ctx, "0xf86b")
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal("0xsent"))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathSendRawTransaction))
			Expect(payload).To(Equal(map[string]string{"raw_transaction": "0xf86b"}))
		})
	})

	Describe("RelayEvents", func() {
		It("should ask for the inclusive block range", func() {
			fakeSender.SendReturns(json.RawMessage(`[{"id":1}]`), nil)

			events, err := client.RelayEvents(ctx, 10, 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(events)).To(Equal(`[{"id":1}]`))

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathRelayEvents))
			Expect(payload).To(Equal(map[string]string{"from_block": "0xa", "to_block": "0xc"}))
		})
	})

	Describe("ApplyRelayEvents", func() {
		It("should forward the events", func() {
			err := client.ApplyRelayEvents(ctx, json.RawMessage(`[{"id":1}]`))
			Expect(err).NotTo(HaveOccurred())

			_, path, payload := fakeSender.SendArgsForCall(0)
			Expect(path).To(Equal(privatechain.PathApplyRelayEvents))
			Expect(payload).To(Equal(map[string]json.RawMessage{"events": json.RawMessage(`[{"id":1}]`)}))
		})

		It("should return the sender error", func() {
			fakeSender.SendReturns(nil, fakeErr)

			err := client.ApplyRelayEvents(ctx, json.RawMessage(`[]`))
			Expect(err).To(MatchError(fakeErr))
		})
	})
})
