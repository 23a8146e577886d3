package txwatch

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrEmptyAddressBook is returned when no address is configured.
	ErrEmptyAddressBook = errors.New("no address to monitor")

	// ErrAddressNameMismatch is returned when addresses and names are not paired one to one.
	ErrAddressNameMismatch = errors.New("addresses and names differ in length")

	// ErrInvalidAddress is returned for entries that are not 20-byte hex addresses.
	ErrInvalidAddress = errors.New("invalid address")
)

// AddressBook maps monitored addresses to their display names. It is built
// once and never modified afterwards, so it is safe for concurrent reads.
type AddressBook struct {
	names map[string]string
}

// NormalizeAddress lowercases an address for comparisons.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// NewAddressBook pairs addresses[i] with names[i].
func NewAddressBook(addresses, names []string) (AddressBook, error) {
	if len(addresses) == 0 {
		return AddressBook{}, ErrEmptyAddressBook
	}

	if len(addresses) != len(names) {
		return AddressBook{}, fmt.Errorf("%w: %d addresses, %d names", ErrAddressNameMismatch, len(addresses), len(names))
	}

	book := AddressBook{names: make(map[string]string, len(addresses))}
	for i, raw := range addresses {
		raw = strings.TrimSpace(raw)
		if !common.IsHexAddress(raw) {
			return AddressBook{}, fmt.Errorf("%w: %q", ErrInvalidAddress, raw)
		}

		addr := NormalizeAddress(common.HexToAddress(raw).Hex())
		book.names[addr] = strings.TrimSpace(names[i])
	}

	return book, nil
}

// ParseAddressBook builds an AddressBook from two parallel comma-separated lists.
func ParseAddressBook(addresses, names string) (AddressBook, error) {
	if strings.TrimSpace(addresses) == "" {
		return AddressBook{}, ErrEmptyAddressBook
	}

	return NewAddressBook(strings.Split(addresses, ","), strings.Split(names, ","))
}

// Contains reports whether addr is monitored.
func (b AddressBook) Contains(addr string) bool {
	_, ok := b.names[NormalizeAddress(addr)]
	return ok
}

// Name returns the display name of addr, or the normalized address itself
// when it is not monitored.
func (b AddressBook) Name(addr string) string {
	addr = NormalizeAddress(addr)
	if name, ok := b.names[addr]; ok && name != "" {
		return name
	}

	return addr
}

// Len returns the number of monitored addresses.
func (b AddressBook) Len() int {
	return len(b.names)
}

// Addresses returns the monitored addresses, sorted.
func (b AddressBook) Addresses() []string {
	out := make([]string, 0, len(b.names))
	for addr := range b.names {
		out = append(out, addr)
	}

	slices.Sort(out)
	return out
}
