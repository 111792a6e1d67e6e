package privatechain

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"tokenrelay/internal/ethereum"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	PathGetTransactionCount = "eth/get_transaction_count"
	PathBlockNumber         = "eth/block_number"
	PathGetBlockByNumber    = "eth/get_block_by_number"
	PathSendRawTransaction  = "eth/send_raw_transaction"
	PathBalance             = "wallet/balance"
	PathAllowance           = "wallet/allowance"
	PathApprove             = "wallet/approve"
	PathRelay               = "wallet/relay"
	PathTip                 = "wallet/tip"
	PathRelayEvents         = "wallet/relay_events"
	PathApplyRelayEvents    = "wallet/apply_relay_events"
	PathReceipt             = "transaction/receipt"
)

// ReceiptLogMined is the log type reported once a log is included in a block.
const ReceiptLogMined = "mined"

type Receipt struct {
	Status string       `json:"status,omitempty"`
	Logs   []ReceiptLog `json:"logs"`
}

type ReceiptLog struct {
	Type string `json:"type"`
}

type Block struct {
	Number    string `json:"number"`
	Hash      string `json:"hash"`
	Timestamp string `json:"timestamp"`
}

// Client exposes the execution service endpoints on top of a Sender.
// Addresses go out canonical, integers as 64 hex characters.
type Client struct {
	sender        Sender
	bridgeAddress string
}

func NewClient(sender Sender, bridgeAddress string) *Client {
	return &Client{
		sender:        sender,
		bridgeAddress: ethereum.CanonicalAddress(bridgeAddress),
	}
}

// GetTransactionCount returns the mined transaction count of address as a hex quantity.
func (c *Client) GetTransactionCount(ctx context.Context, address string) (string, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(address),
	}

	var count string
	if err := c.call(ctx, PathGetTransactionCount, payload, &count); err != nil {
		return "", err
	}
	return count, nil
}

// GetAllowance returns what the bridge may still spend on behalf of owner.
func (c *Client) GetAllowance(ctx context.Context, owner string) (*big.Int, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(owner),
		"spender_eth_address":   c.bridgeAddress,
	}
	return c.callQuantity(ctx, PathAllowance, payload)
}

func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(address),
	}
	return c.callQuantity(ctx, PathBalance, payload)
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var number string
	if err := c.call(ctx, PathBlockNumber, nil, &number); err != nil {
		return 0, err
	}

	n, err := hexutil.DecodeUint64(number)
	if err != nil {
		return 0, fmt.Errorf("decode block number %q: %w", number, err)
	}
	return n, nil
}

// GetBlockByNumber returns nil without error while the block is not available.
func (c *Client) GetBlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	payload := map[string]string{
		"block_number": hexutil.EncodeUint64(number),
	}

	var block *Block
	if err := c.call(ctx, PathGetBlockByNumber, payload, &block); err != nil {
		return nil, err
	}
	return block, nil
}

// Approve lets the bridge spend value of from's tokens. It returns the transaction hash.
func (c *Client) Approve(ctx context.Context, from string, value *big.Int, nonce uint64) (string, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(from),
		"spender_eth_address":   c.bridgeAddress,
		"nonce":                 hexutil.EncodeUint64(nonce),
		"value":                 ethereum.EncodeUint256(value),
	}
	return c.callHash(ctx, PathApprove, payload)
}

// Relay moves value of approved tokens from the bridge to recipient.
func (c *Client) Relay(ctx context.Context, from, recipient string, value *big.Int, nonce uint64) (string, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(from),
		"recipient_eth_address": ethereum.CanonicalAddress(recipient),
		"nonce":                 hexutil.EncodeUint64(nonce),
		"amount":                ethereum.EncodeUint256(value),
	}
	return c.callHash(ctx, PathRelay, payload)
}

// Tip transfers value tokens from the user straight to recipient.
func (c *Client) Tip(ctx context.Context, from, recipient string, value *big.Int, nonce uint64) (string, error) {
	payload := map[string]string{
		"from_user_eth_address": ethereum.CanonicalAddress(from),
		"to_eth_address":        ethereum.CanonicalAddress(recipient),
		"nonce":                 hexutil.EncodeUint64(nonce),
		"value":                 ethereum.EncodeUint256(value),
	}
	return c.callHash(ctx, PathTip, payload)
}

func (c *Client) SendRawTransaction(ctx context.Context, rawTransaction string) (string, error) {
	payload := map[string]string{
		"raw_transaction": rawTransaction,
	}
	return c.callHash(ctx, PathSendRawTransaction, payload)
}

// RelayEvents returns the bridge relay events between the two blocks, inclusive.
func (c *Client) RelayEvents(ctx context.Context, fromBlock, toBlock uint64) (json.RawMessage, error) {
	payload := map[string]string{
		"from_block": hexutil.EncodeUint64(fromBlock),
		"to_block":   hexutil.EncodeUint64(toBlock),
	}
	return c.sender.Send(ctx, PathRelayEvents, payload)
}

func (c *Client) ApplyRelayEvents(ctx context.Context, events json.RawMessage) error {
	payload := map[string]json.RawMessage{
		"events": events,
	}
	if _, err := c.sender.Send(ctx, PathApplyRelayEvents, payload); err != nil {
		return err
	}
	return nil
}

// Receipt returns nil without error while the transaction has no receipt yet.
func (c *Client) Receipt(ctx context.Context, transactionHash string) (*Receipt, error) {
	payload := map[string]string{
		"transaction_hash": transactionHash,
	}

	var receipt *Receipt
	if err := c.call(ctx, PathReceipt, payload, &receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (c *Client) call(ctx context.Context, path string, payload any, out any) error {
	result, err := c.sender.Send(ctx, path, payload)
	if err != nil {
		return err
	}

	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	if err := json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", path, err)
	}
	return nil
}

func (c *Client) callQuantity(ctx context.Context, path string, payload any) (*big.Int, error) {
	var quantity string
	if err := c.call(ctx, path, payload, &quantity); err != nil {
		return nil, err
	}

	v, err := ethereum.ParseHexInt(quantity)
	if err != nil {
		return nil, fmt.Errorf("decode %s result: %w", path, err)
	}
	return v, nil
}

func (c *Client) callHash(ctx context.Context, path string, payload any) (string, error) {
	var hash string
	if err := c.call(ctx, path, payload, &hash); err != nil {
		return "", err
	}
	if hash == "" {
		return "", fmt.Errorf("%s returned no transaction hash", path)
	}
	return hash, nil
}
