package exposure_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/exposure"
	"github.com/feral-file/ff-token-gate/internal/mocks"
	"github.com/feral-file/ff-token-gate/internal/providers/ethereum"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
)

const (
	token  = "0x6b175474e89094c44da98b954eedeac495271d0f"
	wallet = "0x00000000000000000000000000000000000000a1"
	poolA  = "0x00000000000000000000000000000000000000d1"
	poolB  = "0x00000000000000000000000000000000000000d2"
)

func pool(address string, side int) schema.LiquidityPool {
	return schema.LiquidityPool{Address: address, Name: "TOKEN/WETH", TargetSide: side, Enabled: true}
}

func setup(t *testing.T) (*mocks.MockChainReader, exposure.Calculator) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockChainReader(ctrl)
	return reader, exposure.NewCalculator(reader)
}

func TestPoolShare(t *testing.T) {
	tests := []struct {
		name        string
		reserve     int64
		share       int64
		totalSupply int64
		expected    string
	}{
		{"exact share", 10_000, 50, 1_000, "500"},
		{"floor division", 10, 1, 3, "3"},
		{"zero share", 10_000, 0, 1_000, "0"},
		{"zero supply", 10_000, 50, 0, "0"},
		{"whole pool", 777, 9, 9, "777"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exposure.PoolShare(big.NewInt(tt.reserve), big.NewInt(tt.share), big.NewInt(tt.totalSupply))
			assert.Equal(t, tt.expected, got.String())
		})
	}

	t.Run("no overflow on uint256 scale values", func(t *testing.T) {
		reserve, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
		share, _ := new(big.Int).SetString("1000000000000000000000000", 10)
		supply, _ := new(big.Int).SetString("2000000000000000000000000", 10)
		got := exposure.PoolShare(reserve, share, supply)
		expected := new(big.Int).Rsh(reserve, 1)
		assert.Equal(t, expected.String(), got.String())
	})
}

func TestComputeExposure(t *testing.T) {
	ctx := context.Background()
	block := big.NewInt(100)

	t.Run("direct plus pool derived", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(big.NewInt(100), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, block).Return(big.NewInt(50), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolA, block).Return(&ethereum.PoolState{
			TotalSupply: big.NewInt(1_000),
			Reserve0:    big.NewInt(10_000),
			Reserve1:    big.NewInt(3),
		}, nil)

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 0)}, block)
		require.NoError(t, err)
		assert.Equal(t, "100", result.Direct.String())
		assert.Equal(t, "500", result.PoolDerived.String())
		assert.Equal(t, "600", result.Total.String())
		require.Len(t, result.Breakdown, 1)
		assert.Equal(t, domain.PoolContribution{
			Pool:         poolA,
			Name:         "TOKEN/WETH",
			ShareBalance: "50",
			TotalSupply:  "1000",
			Reserve:      "10000",
			Amount:       "500",
		}, result.Breakdown[0])
	})

	t.Run("pool claims sum exactly beyond uint256", func(t *testing.T) {
		maxUint256, _ := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
		state := &ethereum.PoolState{TotalSupply: big.NewInt(7), Reserve0: maxUint256, Reserve1: big.NewInt(0)}

		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(maxUint256, nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, block).Return(big.NewInt(7), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolB, wallet, block).Return(big.NewInt(7), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolA, block).Return(state, nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolB, block).Return(state, nil)

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 0), pool(poolB, 0)}, block)
		require.NoError(t, err)

		expectedPools := new(big.Int).Lsh(maxUint256, 1)
		assert.Equal(t, expectedPools.String(), result.PoolDerived.String())
		assert.Equal(t, new(big.Int).Add(expectedPools, maxUint256).String(), result.Total.String())
		assert.Greater(t, len(result.Total.String()), 78)
		require.Len(t, result.Breakdown, 2)
		assert.Equal(t, maxUint256.String(), result.Breakdown[1].Amount)
	})

	t.Run("target side selects reserve1", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, nil).Return(big.NewInt(0), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, nil).Return(big.NewInt(1), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolA, nil).Return(&ethereum.PoolState{
			TotalSupply: big.NewInt(4),
			Reserve0:    big.NewInt(1_000_000),
			Reserve1:    big.NewInt(10),
		}, nil)

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 1)}, nil)
		require.NoError(t, err)
		assert.Equal(t, "2", result.Total.String())
	})

	t.Run("zero share skips pool state read", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(big.NewInt(7), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, block).Return(big.NewInt(0), nil)

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 0)}, block)
		require.NoError(t, err)
		assert.Equal(t, "7", result.Total.String())
		assert.Empty(t, result.Breakdown)
	})

	t.Run("zero total supply contributes zero", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(big.NewInt(7), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, block).Return(big.NewInt(5), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolA, block).Return(&ethereum.PoolState{
			TotalSupply: big.NewInt(0),
			Reserve0:    big.NewInt(10_000),
			Reserve1:    big.NewInt(10_000),
		}, nil)

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 0)}, block)
		require.NoError(t, err)
		assert.Equal(t, "7", result.Total.String())
		require.Len(t, result.Breakdown, 1)
		assert.Equal(t, "0", result.Breakdown[0].Amount)
	})

	t.Run("failing pool is skipped and others still count", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(big.NewInt(100), nil)
		reader.EXPECT().ReadBalance(gomock.Any(), poolA, wallet, block).Return(big.NewInt(10), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolA, block).
			Return(nil, fmt.Errorf("%w: execution reverted", domain.ErrChainRead))
		reader.EXPECT().ReadBalance(gomock.Any(), poolB, wallet, block).Return(big.NewInt(1), nil)
		reader.EXPECT().ReadPoolState(gomock.Any(), poolB, block).Return(&ethereum.PoolState{
			TotalSupply: big.NewInt(2),
			Reserve0:    big.NewInt(1_000),
			Reserve1:    big.NewInt(0),
		}, nil)

		pools := []schema.LiquidityPool{pool(poolA, 0), pool(poolB, 0)}
		result, err := calc.ComputeExposure(ctx, wallet, token, pools, block)
		require.NoError(t, err)
		assert.Equal(t, "500", result.PoolDerived.String())
		assert.Equal(t, "600", result.Total.String())
		require.Len(t, result.Breakdown, 1)
		assert.Equal(t, poolB, result.Breakdown[0].Pool)
	})

	t.Run("disabled pool is ignored", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).Return(big.NewInt(1), nil)

		disabled := pool(poolA, 0)
		disabled.Enabled = false
		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{disabled}, block)
		require.NoError(t, err)
		assert.Equal(t, "1", result.Total.String())
	})

	t.Run("direct balance failure fails the wallet", func(t *testing.T) {
		reader, calc := setup(t)
		reader.EXPECT().ReadBalance(gomock.Any(), token, wallet, block).
			Return(nil, fmt.Errorf("%w: timeout", domain.ErrChainRead))

		result, err := calc.ComputeExposure(ctx, wallet, token, []schema.LiquidityPool{pool(poolA, 0)}, block)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrChainRead))
	})
}

func TestContribution(t *testing.T) {
	e := &exposure.Exposure{
		Direct:      big.NewInt(1),
		PoolDerived: big.NewInt(2),
		Total:       big.NewInt(3),
	}

	c := e.Contribution(wallet)
	assert.Equal(t, domain.WalletContribution{
		Address:     wallet,
		Direct:      "1",
		PoolDerived: "2",
		Total:       "3",
	}, c)
}
