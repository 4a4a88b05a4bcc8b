package ethereum

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/domain"
)

const (
	// erc20ABIJSON covers the ERC20 view functions used for exposure reads
	erc20ABIJSON = `[
		{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
	]`

	// pairABIJSON is the Uniswap V2 style pair reserves getter
	pairABIJSON = `[
		{"constant":true,"inputs":[],"name":"getReserves","outputs":[{"name":"reserve0","type":"uint112"},{"name":"reserve1","type":"uint112"},{"name":"blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
	]`
)

var (
	erc20ABI = mustParseABI(erc20ABIJSON)
	pairABI  = mustParseABI(pairABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}

// PoolState is the state of an AMM pair at one block
type PoolState struct {
	TotalSupply *big.Int
	Reserve0    *big.Int
	Reserve1    *big.Int
}

// Reserve returns the reserve of the given side (0 or 1)
func (s PoolState) Reserve(side int) (*big.Int, error) {
	switch side {
	case 0:
		return s.Reserve0, nil
	case 1:
		return s.Reserve1, nil
	default:
		return nil, fmt.Errorf("invalid pool side %d", side)
	}
}

// ChainReader reads token and pool state from an EVM chain.
// A nil block number reads the latest state.
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_reader.go -package=mocks -mock_names=ChainReader=MockChainReader
type ChainReader interface {
	// ReadBalance reads balanceOf(holder) on an ERC20 token
	ReadBalance(ctx context.Context, token, holder string, blockNumber *big.Int) (*big.Int, error)

	// ReadTotalSupply reads totalSupply() on an ERC20 token
	ReadTotalSupply(ctx context.Context, token string, blockNumber *big.Int) (*big.Int, error)

	// ReadPoolState reads the share supply and both reserves of a pair
	ReadPoolState(ctx context.Context, pool string, blockNumber *big.Int) (*PoolState, error)

	// ReadDecimals reads decimals() on an ERC20 token
	ReadDecimals(ctx context.Context, token string) (uint8, error)

	// BlockNumber returns the latest block number
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config holds the configuration for the chain reader
type Config struct {
	// RateLimit is the number of RPC calls allowed per second, zero meaning unlimited
	RateLimit float64
	// RateBurst is the maximum burst of RPC calls
	RateBurst int
}

type chainReader struct {
	client  adapter.EthClient
	limiter *rate.Limiter
}

// NewChainReader creates a new chain reader over an Ethereum RPC client
func NewChainReader(client adapter.EthClient, cfg Config) ChainReader {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &chainReader{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// call packs and executes a view call against the given contract
func (c *chainReader) call(ctx context.Context, contract abi.ABI, address string, method string, blockNumber *big.Int, args ...interface{}) ([]interface{}, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid contract address %q", domain.ErrChainRead, address)
	}

	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to pack %s: %v", domain.ErrChainRead, method, err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrChainRead, err)
	}

	to := common.HexToAddress(address)
	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %v", domain.ErrChainRead, method, address, err)
	}

	values, err := contract.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to unpack %s on %s: %v", domain.ErrChainRead, method, address, err)
	}

	return values, nil
}

// ReadBalance reads balanceOf(holder) on an ERC20 token
func (c *chainReader) ReadBalance(ctx context.Context, token, holder string, blockNumber *big.Int) (*big.Int, error) {
	if !domain.ValidAddress(holder) {
		return nil, fmt.Errorf("%w: invalid holder address %q", domain.ErrChainRead, holder)
	}

	values, err := c.call(ctx, erc20ABI, token, "balanceOf", blockNumber, common.HexToAddress(holder))
	if err != nil {
		return nil, err
	}

	return bigIntAt(values, 0, "balanceOf")
}

// ReadTotalSupply reads totalSupply() on an ERC20 token
func (c *chainReader) ReadTotalSupply(ctx context.Context, token string, blockNumber *big.Int) (*big.Int, error) {
	values, err := c.call(ctx, erc20ABI, token, "totalSupply", blockNumber)
	if err != nil {
		return nil, err
	}

	return bigIntAt(values, 0, "totalSupply")
}

// ReadPoolState reads totalSupply() and getReserves() of a pair at the same block
func (c *chainReader) ReadPoolState(ctx context.Context, pool string, blockNumber *big.Int) (*PoolState, error) {
	totalSupply, err := c.ReadTotalSupply(ctx, pool, blockNumber)
	if err != nil {
		return nil, err
	}

	values, err := c.call(ctx, pairABI, pool, "getReserves", blockNumber)
	if err != nil {
		return nil, err
	}

	reserve0, err := bigIntAt(values, 0, "getReserves")
	if err != nil {
		return nil, err
	}
	reserve1, err := bigIntAt(values, 1, "getReserves")
	if err != nil {
		return nil, err
	}

	return &PoolState{
		TotalSupply: totalSupply,
		Reserve0:    reserve0,
		Reserve1:    reserve1,
	}, nil
}

// ReadDecimals reads decimals() on an ERC20 token at the latest block
func (c *chainReader) ReadDecimals(ctx context.Context, token string) (uint8, error) {
	values, err := c.call(ctx, erc20ABI, token, "decimals", nil)
	if err != nil {
		return 0, err
	}

	if len(values) == 0 {
		return 0, fmt.Errorf("%w: decimals returned no value", domain.ErrChainRead)
	}

	switch v := values[0].(type) {
	case uint8:
		return v, nil
	case *big.Int:
		// Non-standard tokens declaring a wider return type
		if !v.IsUint64() || v.Uint64() > math.MaxUint8 {
			return 0, fmt.Errorf("%w: decimals out of range: %s", domain.ErrChainRead, v)
		}
		return uint8(v.Uint64()), nil //nolint:gosec,G115
	default:
		return 0, fmt.Errorf("%w: unexpected decimals type %T", domain.ErrChainRead, values[0])
	}
}

// BlockNumber returns the latest block number
func (c *chainReader) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("%w: rate limiter: %v", domain.ErrChainRead, err)
	}

	number, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: block number: %v", domain.ErrChainRead, err)
	}

	return number, nil
}

// bigIntAt extracts a non-negative *big.Int from unpacked return values
func bigIntAt(values []interface{}, index int, method string) (*big.Int, error) {
	if len(values) <= index {
		return nil, fmt.Errorf("%w: %s returned %d values", domain.ErrChainRead, method, len(values))
	}

	v, ok := values[index].(*big.Int)
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s returned %T", domain.ErrChainRead, method, values[index])
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s returned negative value", domain.ErrChainRead, method)
	}

	return v, nil
}
