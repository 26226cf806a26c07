package logic

import (
	"strconv"
	"strings"
)

// ParseCount parses provider text as a non-negative count. Anything that is
// not an integer (including "", "-" and "N/A") is 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseRank parses a place or points value. Unparsable values are nil so
// that "unranked" is not confused with rank 0.
func ParseRank(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// winRate is won/(won+lost), 0 when no matches were decided
func winRate(won, lost int) float64 {
	total := won + lost
	if total <= 0 {
		return 0
	}
	return float64(won) / float64(total)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
