package eligibility

import (
	"math/big"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// Member identifies a profile in membership changes
type Member struct {
	ProfileID uuid.UUID
	Handle    string
}

// Entry is one profile's evaluated total within a run
type Entry struct {
	ProfileID uuid.UUID
	Handle    string
	Total     *big.Int
	Eligible  bool
}

// IsEligible reports whether total meets the threshold; the boundary is inclusive
func IsEligible(total, threshold *big.Int) bool {
	if total == nil || threshold == nil {
		return false
	}
	return total.Cmp(threshold) >= 0
}

// Classify returns the membership change of a profile between two runs
func Classify(wasEligible, isEligible bool) domain.MembershipChange {
	switch {
	case isEligible && !wasEligible:
		return domain.MembershipNewlyEligible
	case !isEligible && wasEligible:
		return domain.MembershipDropped
	default:
		return domain.MembershipUnchanged
	}
}

// Diff compares the previous eligible set with the current entries.
// A previously eligible profile missing from current counts as dropped.
// Both results are sorted by handle, then profile id.
func Diff(previous []Member, current []Entry) (newlyEligible []Member, dropped []Member) {
	wasEligible := make(map[uuid.UUID]bool, len(previous))
	for _, m := range previous {
		wasEligible[m.ProfileID] = true
	}

	seen := make(map[uuid.UUID]bool, len(current))
	for _, e := range current {
		seen[e.ProfileID] = true
		switch Classify(wasEligible[e.ProfileID], e.Eligible) {
		case domain.MembershipNewlyEligible:
			newlyEligible = append(newlyEligible, Member{ProfileID: e.ProfileID, Handle: e.Handle})
		case domain.MembershipDropped:
			dropped = append(dropped, Member{ProfileID: e.ProfileID, Handle: e.Handle})
		}
	}

	for _, m := range previous {
		if !seen[m.ProfileID] {
			dropped = append(dropped, m)
		}
	}

	sortMembers(newlyEligible)
	sortMembers(dropped)

	return newlyEligible, dropped
}

func sortMembers(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].Handle != members[j].Handle {
			return members[i].Handle < members[j].Handle
		}
		return members[i].ProfileID.String() < members[j].ProfileID.String()
	})
}

// Leaderboard returns up to n eligible entries by total descending.
// Ties keep their input order.
func Leaderboard(entries []Entry, n int) []Entry {
	if n <= 0 {
		n = domain.DEFAULT_LEADERBOARD_SIZE
	}

	board := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Eligible {
			board = append(board, e)
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Total.Cmp(board[j].Total) > 0
	})

	if len(board) > n {
		board = board[:n]
	}

	return board
}

// Trend returns the signed change from older to newer
func Trend(older, newer *big.Int) *big.Int {
	from := new(big.Int)
	if older != nil {
		from.Set(older)
	}
	to := new(big.Int)
	if newer != nil {
		to.Set(newer)
	}
	return to.Sub(to, from)
}

// FormatAmount renders a raw amount in whole tokens, truncated to four decimal places
func FormatAmount(raw *big.Int, decimals int) string {
	if raw == nil {
		raw = new(big.Int)
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).Truncate(4).String() //nolint:gosec,G115
}
