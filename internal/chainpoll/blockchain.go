package chainpoll

import (
	"context"
	"errors"

	"github.com/gabapcia/txalert/internal/txwatch"
)

// ErrChainUnreachable is wrapped by Run when the chain client keeps failing
// past the retry budget.
var ErrChainUnreachable = errors.New("chain unreachable")

// Block is a block with its transactions in chain order.
type Block struct {
	Number       uint64
	Hash         string
	Transactions []txwatch.Transaction
}

// Blockchain is the subset of a chain client the poller needs.
type Blockchain interface {
	// CurrentHeight returns the height of the chain head.
	CurrentHeight(ctx context.Context) (uint64, error)

	// BlockByHeight returns the block at height with its full transactions.
	BlockByHeight(ctx context.Context, height uint64) (Block, error)
}

// TransactionHandler consumes the transactions of every processed block.
type TransactionHandler interface {
	HandleTransaction(ctx context.Context, tx txwatch.Transaction) error
}

// State is the phase of the poll loop.
type State int32

const (
	StateIdle State = iota
	StateCatchingUp
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCatchingUp:
		return "catching_up"
	default:
		return "unknown"
	}
}

// PollState is the progress of the poller. LastProcessedBlock only moves
// forward, and only once a whole range has been handled.
type PollState struct {
	LastProcessedBlock uint64
}
