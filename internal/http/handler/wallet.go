package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tokenrelay/internal/apperr"
	"tokenrelay/internal/core"
	"tokenrelay/internal/http/handler/middleware"
	"tokenrelay/internal/http/payload"

	"go.uber.org/zap"
)

var (
	SendTokens         = "POST /wallet/token/send"
	SendTip            = "POST /wallet/tip"
	SendRawTransaction = "POST /wallet/raw_transaction"
	BindAddress        = "POST /wallet/address"
	SendHistory        = "GET /wallet/token/history"
	Balance            = "GET /wallet/balance"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

func (h *WalletHandler) HandleSendTokens(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	var req payload.SendTokensRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.invalidPayload(w, err, SendTokens, requestId)
		return
	}

	fromAddress, err := h.wallet.WalletAddress(r.Context(), userID)
	if err != nil {
		h.fail(w, err, SendTokens, requestId)
		return
	}

	h.logs.Infow("token send request received",
		"user_id", userID,
		"recipient", req.RecipientEthAddress,
		"send_value", req.SendValue,
		"handler", SendTokens,
		"request_id", requestId)

	result, err := h.wallet.SendTokens(r.Context(), req.ToCore(userID, fromAddress))
	if err != nil {
		h.fail(w, err, SendTokens, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSendTip(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	var req payload.TipRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.invalidPayload(w, err, SendTip, requestId)
		return
	}

	fromAddress, err := h.wallet.WalletAddress(r.Context(), userID)
	if err != nil {
		h.fail(w, err, SendTip, requestId)
		return
	}

	result, err := h.wallet.SendTip(r.Context(), req.ToCore(userID, fromAddress))
	if err != nil {
		h.fail(w, err, SendTip, requestId)
		return
	}

	h.respond(w, result, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSendRawTransaction(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	var req payload.RawTransactionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.invalidPayload(w, err, SendRawTransaction, requestId)
		return
	}

	fromAddress, err := h.wallet.WalletAddress(r.Context(), userID)
	if err != nil {
		h.fail(w, err, SendRawTransaction, requestId)
		return
	}

	txHash, err := h.wallet.SendRawTransaction(r.Context(), req.ToCore(fromAddress))
	if err != nil {
		h.fail(w, err, SendRawTransaction, requestId)
		return
	}

	h.logs.Infow("raw transaction sent",
		"user_id", userID,
		"transaction_hash", txHash,
		"handler", SendRawTransaction,
		"request_id", requestId)

	resp := map[string]string{
		"transaction_hash": txHash,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleBindAddress(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	var req payload.BindAddressRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.invalidPayload(w, err, BindAddress, requestId)
		return
	}

	if err := h.wallet.BindAddress(r.Context(), req.ToCore(userID)); err != nil {
		h.fail(w, err, BindAddress, requestId)
		return
	}

	h.respond(w, Response{Message: "eth address registered"}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSendHistory(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	records, err := h.wallet.SendHistory(r.Context(), userID)
	if err != nil {
		h.fail(w, err, SendHistory, requestId)
		return
	}

	resp := map[string][]core.SendHistoryItem{
		"records": records,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	requestId, userID := requestIdentity(r)

	balance, err := h.wallet.Balance(r.Context(), userID)
	if err != nil {
		h.fail(w, err, Balance, requestId)
		return
	}

	resp := map[string]string{
		"result": balance.String(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *WalletHandler) invalidPayload(w http.ResponseWriter, err error, route, requestId string) {
	h.respond(w, Response{
		Message: "Invalid parameter.",
		Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

// fail maps a service error to its status code. Only validation errors
// expose their message to the caller.
func (h *WalletHandler) fail(w http.ResponseWriter, err error, route, requestId string) {
	var validationErr *apperr.ValidationError

	resp := Response{Message: oopsErr}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		httpCode = http.StatusBadRequest
		resp.Message = validationErr.Message
	case errors.Is(err, apperr.ErrForbidden):
		httpCode = http.StatusForbidden
		resp.Message = "Forbidden."
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status_code", httpCode,
		"handler", route,
		"request_id", requestId)
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestIdentity(r *http.Request) (requestId string, userID string) {
	if v, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		requestId = v
	}
	if v, ok := r.Context().Value(middleware.UserIDKey).(string); ok {
		userID = v
	}
	return requestId, userID
}
