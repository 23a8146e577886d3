package ethereum

import (
	"math/big"

	"github.com/gabapcia/txalert/internal/chainpoll"
	"github.com/gabapcia/txalert/internal/txwatch"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	// TransactionResponse is the part of an Ethereum JSON-RPC transaction
	// object the watcher reads. To is null for contract creations and
	// BlockNumber is null while the transaction is pending.
	TransactionResponse struct {
		Hash        string          `json:"hash"`
		From        string          `json:"from"`
		To          *string         `json:"to"`
		Value       *hexutil.Big    `json:"value"`
		BlockNumber *hexutil.Uint64 `json:"blockNumber"`
		Input       string          `json:"input"`
	}

	// BlockResponse is the part of an Ethereum JSON-RPC block object the
	// watcher reads.
	BlockResponse struct {
		Number       hexutil.Uint64        `json:"number"`
		Hash         string                `json:"hash"`
		ParentHash   string                `json:"parentHash"`
		Timestamp    hexutil.Uint64        `json:"timestamp"`
		Transactions []TransactionResponse `json:"transactions"`
	}
)

func (t TransactionResponse) toTransaction() txwatch.Transaction {
	tx := txwatch.Transaction{
		Hash:  t.Hash,
		From:  t.From,
		Value: new(big.Int),
	}

	if t.To != nil {
		tx.To = *t.To
	}

	if t.Value != nil {
		tx.Value = t.Value.ToInt()
	}

	if t.BlockNumber != nil {
		tx.BlockNumber = uint64(*t.BlockNumber)
	}

	return tx
}

func (b BlockResponse) toBlock() chainpoll.Block {
	transactions := make([]txwatch.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		transactions[i] = t.toTransaction()
	}

	return chainpoll.Block{
		Number:       uint64(b.Number),
		Hash:         b.Hash,
		Transactions: transactions,
	}
}
