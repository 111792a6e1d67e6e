package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"

	"tokenrelay/internal/apperr"
	"tokenrelay/internal/core"
	"tokenrelay/internal/http/handler"
	"tokenrelay/internal/http/handler/fake"
	"tokenrelay/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	walletAddress    = "1234567890123456789012345678901234567890"
	recipientAddress = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
)

var _ = Describe("WalletHandler", func() {
	var (
		wh            *handler.WalletHandler
		fakeService   *fake.WalletService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	newRequest := func(method, target, body string) *http.Request {
		r := httptest.NewRequest(method, target, strings.NewReader(body))
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, "req-1")
		ctx = context.WithValue(ctx, middleware.UserIDKey, "user-1")
		return r.WithContext(ctx)
	}

	decodeBody := func() map[string]any {
		var body map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body
	}

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.WalletService)
		fakeService.WalletAddressReturns(walletAddress, nil)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleSendTokens", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"recipient_eth_address":"%s","send_value":"1000","access_token":"access","pin_code":"1234"}`, recipientAddress)
			req = newRequest("POST", "/wallet/token/send", body)
			fakeService.SendTokensReturns(core.SendResult{IsCompleted: true}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSendTokens(w, req)
		})

		It("should send tokens from the caller's wallet", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody()).To(HaveKeyWithValue("is_completed", true))

			_, userID := fakeService.WalletAddressArgsForCall(0)
			Expect(userID).To(Equal("user-1"))

			_, sendReq := fakeService.SendTokensArgsForCall(0)
			Expect(sendReq.UserID).To(Equal("user-1"))
			Expect(sendReq.FromAddress).To(Equal(walletAddress))
			Expect(sendReq.RecipientAddress).To(Equal(recipientAddress))
			Expect(sendReq.SendValue.String()).To(Equal("1000"))
			Expect(sendReq.PinCode).To(Equal("1234"))
			Expect(sendReq.AccessToken).To(Equal("access"))
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				req = newRequest("POST", "/wallet/token/send", `{"recipient_eth_address":"0x12","send_value":"1000","access_token":"a","pin_code":"1234"}`)
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody()).To(HaveKeyWithValue("message", "Invalid parameter."))
				Expect(fakeService.SendTokensCallCount()).To(BeZero())
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.WalletAddressCallCount()).To(BeZero())
			})
		})

		When("the caller has no wallet address", func() {
			BeforeEach(func() {
				fakeService.WalletAddressReturns("", apperr.ErrForbidden)
			})

			It("should return forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(fakeService.SendTokensCallCount()).To(BeZero())
			})
		})

		When("the send is rejected", func() {
			BeforeEach(func() {
				fakeService.SendTokensReturns(core.SendResult{}, apperr.NewValidationError("Token withdrawal limit has been exceeded."))
			})

			It("should return the validation message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody()).To(HaveKeyWithValue("message", "Token withdrawal limit has been exceeded."))
			})
		})

		When("the send fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SendTokensReturns(core.SendResult{}, fmt.Errorf("relay: %w", fakeErr))
			})

			It("should hide the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				body := decodeBody()
				Expect(body).To(HaveKeyWithValue("message", "Oops! Something went wrong. Please try again later."))
				Expect(body).NotTo(HaveKey("error"))
			})
		})
	})

	Describe("HandleSendTip", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"recipient_eth_address":"%s","tip_value":"5","access_token":"access","pin_code":"1234"}`, recipientAddress)
			req = newRequest("POST", "/wallet/tip", body)
			fakeService.SendTipReturns(core.TipResult{TransactionHash: "0xtip", IsCompleted: true}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSendTip(w, req)
		})

		It("should return the tip transaction", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			body := decodeBody()
			Expect(body).To(HaveKeyWithValue("transaction_hash", "0xtip"))
			Expect(body).To(HaveKeyWithValue("is_completed", true))

			_, tipReq := fakeService.SendTipArgsForCall(0)
			Expect(tipReq.FromAddress).To(Equal(walletAddress))
			Expect(tipReq.TipValue.String()).To(Equal("5"))
		})

		When("the tip value is out of range", func() {
			BeforeEach(func() {
				fakeService.SendTipReturns(core.TipResult{}, apperr.NewValidationError("tip_value is invalid"))
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody()).To(HaveKeyWithValue("message", "tip_value is invalid"))
			})
		})
	})

	Describe("HandleSendRawTransaction", func() {
		BeforeEach(func() {
			req = newRequest("POST", "/wallet/raw_transaction", `{"raw_transaction":"0xf86b"}`)
			fakeService.SendRawTransactionReturns("0xhash", nil)
		})

		JustBeforeEach(func() {
			wh.HandleSendRawTransaction(w, req)
		})

		It("should return the transaction hash", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody()).To(HaveKeyWithValue("transaction_hash", "0xhash"))

			_, rawReq := fakeService.SendRawTransactionArgsForCall(0)
			Expect(rawReq.FromAddress).To(Equal(walletAddress))
			Expect(rawReq.RawTransaction).To(Equal("0xf86b"))
		})

		When("the transaction is invalid", func() {
			BeforeEach(func() {
				fakeService.SendRawTransactionReturns("", apperr.InvalidTransaction("nonce is invalid"))
			})

			It("should return bad request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeBody()).To(HaveKeyWithValue("message", "nonce is invalid"))
			})
		})
	})

	Describe("HandleBindAddress", func() {
		BeforeEach(func() {
			body := fmt.Sprintf(`{"eth_address":"%s","signature":"0x%s"}`, recipientAddress, strings.Repeat("ab", 65))
			req = newRequest("POST", "/wallet/address", body)
		})

		JustBeforeEach(func() {
			wh.HandleBindAddress(w, req)
		})

		It("should bind the address to the caller", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			_, bindReq := fakeService.BindAddressArgsForCall(0)
			Expect(bindReq.UserID).To(Equal("user-1"))
			Expect(bindReq.Address).To(Equal(recipientAddress))
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.BindAddressReturns(apperr.ErrForbidden)
			})

			It("should return forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleSendHistory", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/wallet/token/history", "")
			fakeService.SendHistoryReturns([]core.SendHistoryItem{
				{SortKey: 2, SendValue: "10", SendStatus: "done"},
				{SortKey: 1, SendValue: "5", SendStatus: "fail"},
			}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSendHistory(w, req)
		})

		It("should list the caller's records", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var body map[string][]core.SendHistoryItem
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["records"]).To(HaveLen(2))
			Expect(body["records"][0].SortKey).To(Equal(int64(2)))
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeService.SendHistoryReturns(nil, fakeErr)
			})

			It("should return internal server error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleBalance", func() {
		BeforeEach(func() {
			req = newRequest("GET", "/wallet/balance", "")
			balance, _ := new(big.Int).SetString("1000000000000000000000", 10)
			fakeService.BalanceReturns(balance, nil)
		})

		JustBeforeEach(func() {
			wh.HandleBalance(w, req)
		})

		It("should return the balance as a decimal string", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeBody()).To(HaveKeyWithValue("result", "1000000000000000000000"))
		})
	})
})
