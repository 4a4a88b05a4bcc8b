package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// RunStatus represents the lifecycle state of a screening run
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
	// RunStatusPartial is reserved; wallet-level failures currently finish as success with a failure count
	RunStatusPartial RunStatus = "partial"
)

// IsTerminal reports whether the status is a final state
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusSuccess || s == RunStatusError || s == RunStatusPartial
}

// WalletStatus represents the verification state of a linked wallet
type WalletStatus string

const (
	WalletStatusVerified WalletStatus = "verified"
	WalletStatusPending  WalletStatus = "pending"
	WalletStatusError    WalletStatus = "error"
)

// MembershipChange classifies a profile relative to the previous successful run
type MembershipChange string

const (
	MembershipNewlyEligible MembershipChange = "newly_eligible"
	MembershipDropped       MembershipChange = "dropped"
	MembershipUnchanged     MembershipChange = "unchanged"
)

// PoolContribution is the token amount a wallet holds through one liquidity pool
type PoolContribution struct {
	Pool         string `json:"pool"`
	Name         string `json:"name,omitempty"`
	ShareBalance string `json:"share_balance"`
	TotalSupply  string `json:"total_supply"`
	Reserve      string `json:"reserve"`
	Amount       string `json:"amount"`
}

// WalletContribution is one wallet's entry in a profile snapshot breakdown
type WalletContribution struct {
	Address     string             `json:"address"`
	Direct      string             `json:"direct"`
	PoolDerived string             `json:"pool_derived"`
	Total       string             `json:"total"`
	Pools       []PoolContribution `json:"pools,omitempty"`
	Error       *string            `json:"error,omitempty"`
}

var handlePattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// NormalizeHandle lower-cases a Telegram handle and strips a leading '@'
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

// ValidHandle checks a normalized handle
func ValidHandle(handle string) bool {
	return handlePattern.MatchString(handle)
}

// NormalizeAddress normalizes an EVM address to its lower-case hex form
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return strings.ToLower(address)
	}
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// NormalizeAddresses normalizes a list of addresses in place
func NormalizeAddresses(addresses []string) []string {
	for i, address := range addresses {
		addresses[i] = NormalizeAddress(address)
	}
	return addresses
}

// ValidAddress checks whether the value is a 20-byte hex address
func ValidAddress(address string) bool {
	return common.IsHexAddress(strings.TrimSpace(address))
}

// ParseRawAmount parses a non-negative base-10 integer amount
func ParseRawAmount(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative %q", ErrInvalidAmount, raw)
	}
	return v, nil
}

// AmountString renders a big integer for storage, treating nil as zero
func AmountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
