// Package notify renders transaction notifications for Telegram, delivers them
// and forwards structured details to a downstream HTTP sink.
package notify

import (
	"math/big"
	"strings"

	"github.com/gabapcia/txalert/internal/markup"

	"github.com/shopspring/decimal"
)

// weiDecimals is the number of decimals between wei and ether.
const weiDecimals = 18

// Direction tells whether a monitored address sent or received a transaction.
type Direction string

const (
	Outgoing Direction = "OUTGOING"
	Incoming Direction = "INCOMING"
)

// Notification holds everything needed to render one message.
//
// Action must already be MarkdownV2 text (it may embed a link). Every other
// field is plain text and is escaped by Format.
type Notification struct {
	Direction Direction
	FromName  string
	ToName    string
	TxHash    string
	TxURL     string
	Action    string
	Labels    string
	Value     *big.Int
}

// ForwardedDetails is the payload posted to the downstream sink.
type ForwardedDetails struct {
	FromName   string `json:"fromName"`
	TxHash     string `json:"txHash"`
	ActionText string `json:"actionText"`
}

// FormatEther renders a wei amount in ether without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	return decimal.NewFromBigInt(wei, -weiDecimals).String()
}

func txHashLink(n Notification) string {
	if n.TxURL == "" {
		return markup.Escape(n.TxHash)
	}

	return markup.Link(n.TxHash, n.TxURL)
}

// Format renders n as a MarkdownV2 message.
func Format(n Notification) string {
	var b strings.Builder

	switch n.Direction {
	case Incoming:
		b.WriteString("⭐ " + markup.Bold(n.ToName+": INCOMING") + " 💵\n")
		b.WriteString("*Value:* " + markup.Escape(FormatEther(n.Value)) + " ETH\n")
		b.WriteString("*From:* " + markup.Escape(n.FromName) + "\n")
		b.WriteString("*To:* " + markup.Escape(n.ToName) + "\n")
		b.WriteString("*Transaction Hash:* " + txHashLink(n))
	default:
		b.WriteString("⭐ " + markup.Bold(n.FromName+": OUTGOING") + " 💵\n\n")
		b.WriteString("*Transaction Hash:* " + txHashLink(n) + "\n\n")
		b.WriteString("*Action:* " + n.Action)
		if n.Labels != "" {
			b.WriteString("\n\n*Signal:* " + markup.Escape(n.Labels))
		}
	}

	return b.String()
}
