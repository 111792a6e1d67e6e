package payload_test

import (
	"net/http/httptest"
	"strings"

	"tokenrelay/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const validAddress = "0x1234567890123456789012345678901234567890"

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	decode := func(body string, object any) error {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		return decoder.DecodeJSONPayload(req, object)
	}

	Describe("SendTokensRequest", func() {
		It("should decode a valid request", func() {
			var req payload.SendTokensRequest
			err := decode(`{"recipient_eth_address":"`+validAddress+`","send_value":"1000000000000000000000","access_token":"t","pin_code":"1234"}`, &req)
			Expect(err).NotTo(HaveOccurred())

			coreReq := req.ToCore("user-1", "abc")
			Expect(coreReq.SendValue.String()).To(Equal("1000000000000000000000"))
			Expect(coreReq.UserID).To(Equal("user-1"))
			Expect(coreReq.FromAddress).To(Equal("abc"))
			Expect(coreReq.RecipientAddress).To(Equal(validAddress))
		})

		DescribeTable("invalid requests",
			func(body string) {
				var req payload.SendTokensRequest
				Expect(decode(body, &req)).To(HaveOccurred())
			},
			Entry("unknown field", `{"recipient_eth_address":"`+validAddress+`","send_value":"1","access_token":"t","pin_code":"1234","extra":1}`),
			Entry("bad address", `{"recipient_eth_address":"0x12","send_value":"1","access_token":"t","pin_code":"1234"}`),
			Entry("zero value", `{"recipient_eth_address":"`+validAddress+`","send_value":"0","access_token":"t","pin_code":"1234"}`),
			Entry("negative value", `{"recipient_eth_address":"`+validAddress+`","send_value":"-1","access_token":"t","pin_code":"1234"}`),
			Entry("missing token", `{"recipient_eth_address":"`+validAddress+`","send_value":"1","pin_code":"1234"}`),
			Entry("letters in pin", `{"recipient_eth_address":"`+validAddress+`","send_value":"1","access_token":"t","pin_code":"12ab"}`),
			Entry("not json", `recipient`),
		)
	})

	Describe("TipRequest", func() {
		It("should decode the tip value", func() {
			var req payload.TipRequest
			Expect(decode(`{"recipient_eth_address":"`+validAddress+`","tip_value":"5","access_token":"t","pin_code":"1234"}`, &req)).To(Succeed())
			Expect(req.ToCore("user-1", "abc").TipValue.Int64()).To(BeEquivalentTo(5))
		})

		It("should require a tip value", func() {
			var req payload.TipRequest
			Expect(decode(`{"recipient_eth_address":"`+validAddress+`","access_token":"t","pin_code":"1234"}`, &req)).To(HaveOccurred())
		})
	})

	Describe("RawTransactionRequest", func() {
		It("should accept a request without to address", func() {
			var req payload.RawTransactionRequest
			Expect(decode(`{"raw_transaction":"0xf86b"}`, &req)).To(Succeed())
			Expect(req.ToCore("abc").FromAddress).To(Equal("abc"))
		})

		It("should reject a raw transaction without prefix", func() {
			var req payload.RawTransactionRequest
			Expect(decode(`{"raw_transaction":"f86b"}`, &req)).To(HaveOccurred())
		})
	})

	Describe("BindAddressRequest", func() {
		It("should require a 65 byte signature", func() {
			var req payload.BindAddressRequest
			Expect(decode(`{"eth_address":"`+validAddress+`","signature":"0x1234"}`, &req)).To(HaveOccurred())

			signature := "0x" + strings.Repeat("ab", 65)
			Expect(decode(`{"eth_address":"`+validAddress+`","signature":"`+signature+`"}`, &req)).To(Succeed())
			Expect(req.ToCore("user-1").Signature).To(Equal(signature))
		})
	})
})
