// Package ethereum implements the chain client used by the poller on top of
// an Ethereum JSON-RPC endpoint.
package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txalert/internal/chainpoll"
	"github.com/gabapcia/txalert/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txalert/internal/txwatch"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrBlockNotFound is returned when the node has no block at the requested height.
	ErrBlockNotFound = errors.New("block not found")

	// ErrTransactionNotFound is returned when the node does not know the transaction.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// client talks to an Ethereum node through a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

// Ensure client implements the chainpoll.Blockchain interface at compile time.
var _ chainpoll.Blockchain = (*client)(nil)

// NewClient creates an Ethereum client over conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// CurrentHeight returns the number of the most recent block.
func (c *client) CurrentHeight(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var height hexutil.Uint64
	if err := json.Unmarshal(data, &height); err != nil {
		return 0, fmt.Errorf("decode block number: %w", err)
	}

	return uint64(height), nil
}

// BlockByHeight returns the block at height with its full transaction objects.
func (c *client) BlockByHeight(ctx context.Context, height uint64) (chainpoll.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", hexutil.EncodeUint64(height), true)
	if err != nil {
		return chainpoll.Block{}, err
	}

	if isNull(data) {
		return chainpoll.Block{}, fmt.Errorf("%w: %d", ErrBlockNotFound, height)
	}

	var block BlockResponse
	if err := json.Unmarshal(data, &block); err != nil {
		return chainpoll.Block{}, fmt.Errorf("decode block %d: %w", height, err)
	}

	return block.toBlock(), nil
}

// TransactionByHash returns a single transaction. Pending transactions have
// a zero BlockNumber.
func (c *client) TransactionByHash(ctx context.Context, hash string) (txwatch.Transaction, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return txwatch.Transaction{}, err
	}

	if isNull(data) {
		return txwatch.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hash)
	}

	var tx TransactionResponse
	if err := json.Unmarshal(data, &tx); err != nil {
		return txwatch.Transaction{}, fmt.Errorf("decode transaction %s: %w", hash, err)
	}

	return tx.toTransaction(), nil
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}
