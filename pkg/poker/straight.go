package poker

import (
	"katas-server/pkg/deck"
)

// broadway is 10-J-Q-K-A as sorted rank indexes, with the ace at index 0
var broadway = []int{0, 9, 10, 11, 12}

// isRun reports whether the sorted rank indexes form a straight.
// The wheel (A-2-3-4-5) is already consecutive because the ace is low;
// broadway is the only straight that needs the ace high
func isRun(sorted []int) bool {
	if len(sorted) != HandSize {
		return false
	}

	consecutive := true
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			consecutive = false
			break
		}
	}

	if consecutive {
		return true
	}

	for i, idx := range broadway {
		if sorted[i] != idx {
			return false
		}
	}

	return true
}

// sameSuitBlock reports whether every sorted deck index lies in one suit's block of 13
func sameSuitBlock(sorted []int) bool {
	if len(sorted) == 0 {
		return false
	}

	return sorted[0]/deck.RanksPerSuit == sorted[len(sorted)-1]/deck.RanksPerSuit
}

// IsStraight returns true if the five cards form a straight, regardless of suit
func IsStraight(cards deck.Hand) bool {
	if len(cards) != HandSize {
		return false
	}

	return newAnalysis(cards).isStraight()
}

// IsFlush returns true if the five cards share a suit
func IsFlush(cards deck.Hand) bool {
	if len(cards) != HandSize {
		return false
	}

	return newAnalysis(cards).isFlush()
}

// IsStraightFlush returns true if the five cards form a straight within a single suit
func IsStraightFlush(cards deck.Hand) bool {
	if len(cards) != HandSize {
		return false
	}

	return newAnalysis(cards).isStraightFlush()
}
