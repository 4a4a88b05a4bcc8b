package eligibility

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

func amount(t *testing.T, raw string) *big.Int {
	t.Helper()
	v, err := domain.ParseRawAmount(raw)
	require.NoError(t, err)
	return v
}

func TestIsEligible(t *testing.T) {
	threshold := amount(t, "1000000000000000000000000") // 10^24

	tests := []struct {
		name     string
		total    *big.Int
		expected bool
	}{
		{"exactly at threshold", amount(t, "1000000000000000000000000"), true},
		{"one below threshold", amount(t, "999999999999999999999999"), false},
		{"above threshold", amount(t, "1000000000000000000000001"), true},
		{"zero", big.NewInt(0), false},
		{"nil total", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEligible(tt.total, threshold))
		})
	}

	assert.True(t, IsEligible(big.NewInt(0), big.NewInt(0)), "zero threshold admits everyone")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.MembershipNewlyEligible, Classify(false, true))
	assert.Equal(t, domain.MembershipDropped, Classify(true, false))
	assert.Equal(t, domain.MembershipUnchanged, Classify(true, true))
	assert.Equal(t, domain.MembershipUnchanged, Classify(false, false))
}

func TestDiff(t *testing.T) {
	a := Member{ProfileID: uuid.New(), Handle: "a"}
	b := Member{ProfileID: uuid.New(), Handle: "b"}
	c := Member{ProfileID: uuid.New(), Handle: "c"}

	t.Run("previous {A,B} current {B,C}", func(t *testing.T) {
		current := []Entry{
			{ProfileID: a.ProfileID, Handle: "a", Total: big.NewInt(1), Eligible: false},
			{ProfileID: b.ProfileID, Handle: "b", Total: big.NewInt(100), Eligible: true},
			{ProfileID: c.ProfileID, Handle: "c", Total: big.NewInt(100), Eligible: true},
		}

		newly, dropped := Diff([]Member{b, a}, current)
		assert.Equal(t, []Member{c}, newly)
		assert.Equal(t, []Member{a}, dropped)
	})

	t.Run("profile gone from current is dropped", func(t *testing.T) {
		current := []Entry{
			{ProfileID: b.ProfileID, Handle: "b", Total: big.NewInt(100), Eligible: true},
		}

		newly, dropped := Diff([]Member{a, b}, current)
		assert.Empty(t, newly)
		assert.Equal(t, []Member{a}, dropped)
	})

	t.Run("first run has no baseline", func(t *testing.T) {
		current := []Entry{
			{ProfileID: c.ProfileID, Handle: "c", Total: big.NewInt(1), Eligible: true},
			{ProfileID: a.ProfileID, Handle: "a", Total: big.NewInt(1), Eligible: true},
		}

		newly, dropped := Diff(nil, current)
		assert.Equal(t, []Member{a, c}, newly)
		assert.Empty(t, dropped)
	})
}

func TestLeaderboard(t *testing.T) {
	entries := []Entry{
		{Handle: "a", Total: big.NewInt(5), Eligible: false},
		{Handle: "b", Total: big.NewInt(10), Eligible: true},
		{Handle: "c", Total: big.NewInt(20), Eligible: true},
	}

	t.Run("eligible only by total descending", func(t *testing.T) {
		board := Leaderboard(entries, 10)
		require.Len(t, board, 2)
		assert.Equal(t, "c", board[0].Handle)
		assert.Equal(t, "b", board[1].Handle)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		tied := []Entry{
			{Handle: "x", Total: big.NewInt(7), Eligible: true},
			{Handle: "y", Total: big.NewInt(9), Eligible: true},
			{Handle: "z", Total: big.NewInt(7), Eligible: true},
		}
		board := Leaderboard(tied, 10)
		require.Len(t, board, 3)
		assert.Equal(t, []string{"y", "x", "z"}, []string{board[0].Handle, board[1].Handle, board[2].Handle})
	})

	t.Run("truncated to n", func(t *testing.T) {
		many := make([]Entry, 0, 15)
		for i := 0; i < 15; i++ {
			many = append(many, Entry{Handle: string(rune('a' + i)), Total: big.NewInt(int64(i)), Eligible: true})
		}
		board := Leaderboard(many, 0)
		require.Len(t, board, domain.DEFAULT_LEADERBOARD_SIZE)
		assert.Equal(t, "o", board[0].Handle)
	})
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "50", Trend(big.NewInt(100), big.NewInt(150)).String())
	assert.Equal(t, "-100", Trend(big.NewInt(100), big.NewInt(0)).String())
	assert.Equal(t, "42", Trend(nil, big.NewInt(42)).String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1000000", FormatAmount(amount(t, "1000000000000000000000000"), 18))
	assert.Equal(t, "1.5", FormatAmount(amount(t, "1500000000000000000"), 18))
	assert.Equal(t, "0.1234", FormatAmount(amount(t, "123456789"), 9))
	assert.Equal(t, "42", FormatAmount(big.NewInt(42), 0))
	assert.Equal(t, "0", FormatAmount(nil, 18))
}

func TestRenderSummary(t *testing.T) {
	runID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	summary := Summary{
		RunID:             runID,
		FinishedAt:        time.Date(2030, 1, 2, 3, 4, 0, 0, time.UTC),
		ProfilesProcessed: 3,
		WalletsProcessed:  4,
		WalletsFailed:     1,
		EligibleCount:     2,
		Threshold:         amount(t, "1000000000000000000"),
		Decimals:          18,
		NewlyEligible:     []Member{{Handle: "carol"}},
		Dropped:           []Member{{Handle: "alice"}},
		Leaderboard: []Entry{
			{Handle: "carol", Total: amount(t, "3000000000000000000"), Eligible: true},
			{Handle: "bob", Total: amount(t, "2500000000000000000"), Eligible: true},
		},
	}

	t.Run("default template", func(t *testing.T) {
		text, err := RenderSummary("", summary)
		require.NoError(t, err)
		assert.Contains(t, text, "Screening run "+runID.String()+" finished 2030-01-02 03:04 UTC")
		assert.Contains(t, text, "Wallets: 4 (1 failed)")
		assert.Contains(t, text, "Eligible: 2 (threshold 1)")
		assert.Contains(t, text, "+ @carol")
		assert.Contains(t, text, "- @alice")
		assert.Contains(t, text, "1. @carol 3\n2. @bob 2.5")
	})

	t.Run("custom template", func(t *testing.T) {
		text, err := RenderSummary("{{.EligibleCount}} eligible, top {{amount (index .Leaderboard 0).Total}}", summary)
		require.NoError(t, err)
		assert.Equal(t, "2 eligible, top 3", text)
	})

	t.Run("quiet run omits empty sections", func(t *testing.T) {
		quiet := summary
		quiet.NewlyEligible = nil
		quiet.Dropped = nil
		quiet.Leaderboard = nil
		quiet.WalletsFailed = 0
		text, err := RenderSummary("", quiet)
		require.NoError(t, err)
		assert.False(t, strings.Contains(text, "Newly eligible"))
		assert.False(t, strings.Contains(text, "failed"))
	})

	t.Run("invalid template", func(t *testing.T) {
		_, err := RenderSummary("{{.Missing", summary)
		assert.Error(t, err)
	})
}
