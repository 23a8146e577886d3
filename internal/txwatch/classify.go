package txwatch

import "strings"

const (
	LabelBuy  = "BUY"
	LabelSell = "SELL"

	swapPrefix       = "Swap"
	aggregatedPrefix = "Aggregated"
)

// Classify labels an outgoing transaction from its action text. "ETH For"
// marks a buy and "ETH On" a sell; both may apply, in which case the labels
// are joined by a space. No match yields an empty string.
func Classify(action string) string {
	var labels []string
	if strings.Contains(action, "ETH For") {
		labels = append(labels, LabelBuy)
	}
	if strings.Contains(action, "ETH On") {
		labels = append(labels, LabelSell)
	}

	return strings.Join(labels, " ")
}

// PassesSwapGate reports whether an outgoing transaction with the given
// action text may be notified. With swapOnly unset everything passes.
func PassesSwapGate(action string, swapOnly, allowAggregated bool) bool {
	if !swapOnly {
		return true
	}

	if strings.HasPrefix(action, swapPrefix) {
		return true
	}

	return allowAggregated && strings.HasPrefix(action, aggregatedPrefix)
}
