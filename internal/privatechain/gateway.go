package privatechain

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tokenrelay/internal/apperr"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"go.uber.org/zap"
)

const signingService = "execute-api"

type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// Gateway is the single way to reach the execution service. Every request is
// signed with the service credentials.
type Gateway struct {
	logs        *zap.SugaredLogger
	baseURL     string
	credentials Credentials
	signer      *v4.Signer
	client      HTTPDoer
	now         func() time.Time
}

// NewGateway builds a gateway posting to <baseURL>/production/<path>.
// baseURL may be a bare execute-api host, in which case https is assumed.
func NewGateway(logger *zap.SugaredLogger, baseURL string, credentials Credentials, client HTTPDoer) *Gateway {
	return &Gateway{
		logs:        logger,
		baseURL:     normalizeBaseURL(baseURL),
		credentials: credentials,
		signer:      v4.NewSigner(),
		client:      client,
		now:         time.Now,
	}
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	return baseURL
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  json.RawMessage `json:"error"`
}

// Send posts payload to path and returns the result field of the response.
// A nil payload is sent as an empty object.
func (g *Gateway) Send(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body := []byte("{}")
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
	}

	url := fmt.Sprintf("%s/production/%s", g.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := g.sign(ctx, req, body); err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logs.Errorw("execution service rejected request",
			"path", path,
			"status", resp.StatusCode)
		return nil, &apperr.SendTransactionError{Message: "status code not 200"}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Error) > 0 && string(parsed.Error) != "null" {
		g.logs.Errorw("execution service returned an error",
			"path", path,
			"error", string(parsed.Error))
		return nil, &apperr.SendTransactionError{Message: errorMessage(parsed.Error)}
	}

	return parsed.Result, nil
}

func (g *Gateway) sign(ctx context.Context, req *http.Request, body []byte) error {
	hash := sha256.Sum256(body)
	creds := aws.Credentials{
		AccessKeyID:     g.credentials.AccessKeyID,
		SecretAccessKey: g.credentials.SecretAccessKey,
	}
	return g.signer.SignHTTP(ctx, creds, req, hex.EncodeToString(hash[:]), signingService, g.credentials.Region, g.now())
}

// errorMessage unwraps a string error, or an object carrying a message field.
func errorMessage(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	return string(raw)
}
