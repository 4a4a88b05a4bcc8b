package exposure

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/providers/ethereum"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

// Exposure is a wallet's holding of the target token, directly and through pools
type Exposure struct {
	Direct      *big.Int
	PoolDerived *big.Int
	Total       *big.Int
	Breakdown   []domain.PoolContribution
}

// Contribution renders the exposure as a snapshot breakdown entry
func (e *Exposure) Contribution(address string) domain.WalletContribution {
	return domain.WalletContribution{
		Address:     address,
		Direct:      domain.AmountString(e.Direct),
		PoolDerived: domain.AmountString(e.PoolDerived),
		Total:       domain.AmountString(e.Total),
		Pools:       e.Breakdown,
	}
}

// Calculator computes a wallet's exposure to the target token.
// It only reads chain state; persisting the result is up to the caller.
//
//go:generate mockgen -source=exposure.go -destination=../mocks/exposure.go -package=mocks -mock_names=Calculator=MockCalculator
type Calculator interface {
	// ComputeExposure reads the direct balance and the claim on every given pool at blockNumber.
	// It fails with domain.ErrChainRead only when the direct balance cannot be read;
	// a failing pool is skipped and excluded from the breakdown and the total.
	ComputeExposure(ctx context.Context, wallet string, targetToken string, pools []schema.LiquidityPool, blockNumber *big.Int) (*Exposure, error)
}

type calculator struct {
	reader ethereum.ChainReader
}

// NewCalculator creates a new exposure calculator
func NewCalculator(reader ethereum.ChainReader) Calculator {
	return &calculator{reader: reader}
}

// ComputeExposure computes direct + pool-derived balances for one wallet
func (c *calculator) ComputeExposure(ctx context.Context, wallet string, targetToken string, pools []schema.LiquidityPool, blockNumber *big.Int) (*Exposure, error) {
	direct, err := c.reader.ReadBalance(ctx, targetToken, wallet, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to read direct balance of %s: %w", wallet, err)
	}

	exposure := &Exposure{
		Direct:      new(big.Int).Set(direct),
		PoolDerived: new(big.Int),
		Breakdown:   []domain.PoolContribution{},
	}

	for _, pool := range pools {
		if !pool.Enabled {
			continue
		}

		contribution, amount, err := c.poolContribution(ctx, wallet, pool, blockNumber)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping pool after failed read",
				zap.String("wallet", wallet),
				zap.String("pool", pool.Address),
				zap.Error(err))
			continue
		}
		if contribution == nil {
			continue
		}

		exposure.PoolDerived.Add(exposure.PoolDerived, amount)
		exposure.Breakdown = append(exposure.Breakdown, *contribution)
	}

	exposure.Total = new(big.Int).Add(exposure.Direct, exposure.PoolDerived)

	return exposure, nil
}

// poolContribution returns the breakdown entry and the claimed amount,
// or a nil entry when the wallet holds no share of the pool
func (c *calculator) poolContribution(ctx context.Context, wallet string, pool schema.LiquidityPool, blockNumber *big.Int) (*domain.PoolContribution, *big.Int, error) {
	// The pair contract is its own share token
	share, err := c.reader.ReadBalance(ctx, pool.Address, wallet, blockNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read share balance: %w", err)
	}
	if share.Sign() == 0 {
		return nil, nil, nil
	}

	state, err := c.reader.ReadPoolState(ctx, pool.Address, blockNumber)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read pool state: %w", err)
	}

	reserve, err := state.Reserve(pool.TargetSide)
	if err != nil {
		return nil, nil, err
	}

	amount := PoolShare(reserve, share, state.TotalSupply)
	return &domain.PoolContribution{
		Pool:         pool.Address,
		Name:         pool.Name,
		ShareBalance: share.String(),
		TotalSupply:  domain.AmountString(state.TotalSupply),
		Reserve:      domain.AmountString(reserve),
		Amount:       amount.String(),
	}, amount, nil
}

// PoolShare returns floor(reserve * share / totalSupply), or zero when
// either the share or the total supply is zero
func PoolShare(reserve, share, totalSupply *big.Int) *big.Int {
	if reserve == nil || share == nil || totalSupply == nil || share.Sign() == 0 || totalSupply.Sign() == 0 {
		return new(big.Int)
	}

	claim := new(big.Int).Mul(reserve, share)
	// Quo truncates toward zero which is floor for non-negative operands
	return claim.Quo(claim, totalSupply)
}
