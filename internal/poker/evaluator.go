package poker

// EvaluateFive classifies exactly five cards. Checks run strongest first since
// several predicates hold at once (a straight flush is also a flush).
func EvaluateFive(cards [HandSize]Card) HandRank {
	var rankCounts [aceHighValue + 1]int
	flush := true
	for i, c := range cards {
		rankCounts[c.Rank.value()]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	values := make([]int, 0, HandSize)
	pairs, trips, quads := 0, 0, 0
	for v := aceHighValue; v >= 2; v-- {
		switch rankCounts[v] {
		case 0:
			continue
		case 2:
			pairs++
		case 3:
			trips++
		case 4:
			quads++
		}
		values = append(values, v)
	}

	straight := isStraight(values)

	switch {
	case flush && straight && values[len(values)-1] == royalLowCard:
		return RoyalFlush
	case flush && straight:
		return StraightFlush
	case quads == 1:
		return FourOfAKind
	case trips == 1 && pairs == 1:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}

// isStraight expects distinct values sorted high to low
func isStraight(values []int) bool {
	if len(values) != HandSize {
		return false
	}
	if values[0]-values[HandSize-1] == HandSize-1 {
		return true
	}
	// wheel: A-5-4-3-2 with the ace playing low
	return values[0] == aceHighValue && values[1] == wheelTopCard && values[HandSize-1] == 2
}

// EvaluateHand returns the strongest rank among every 5-card subset of cards.
// Fewer than five cards evaluate to HighCard.
func EvaluateHand(cards []Card) HandRank {
	best, _ := bestCombination(cards)
	return best
}

// BestHandCards returns the first 5-card subset, in index order, that reaches
// the best rank. Returns nil for fewer than five cards.
func BestHandCards(cards []Card) []Card {
	_, combo := bestCombination(cards)
	return combo
}

func bestCombination(cards []Card) (HandRank, []Card) {
	if len(cards) < HandSize {
		return HighCard, nil
	}

	var (
		best    HandRank
		bestIdx [HandSize]int
		found   bool
		idx     [HandSize]int
		hand    [HandSize]Card
		n       = len(cards)
	)
	for i := range idx {
		idx[i] = i
	}

	for {
		for i, j := range idx {
			hand[i] = cards[j]
		}
		if rank := EvaluateFive(hand); !found || rank > best {
			best, bestIdx, found = rank, idx, true
			if best == RoyalFlush {
				break
			}
		}
		if !nextCombination(idx[:], n) {
			break
		}
	}

	combo := make([]Card, HandSize)
	for i, j := range bestIdx {
		combo[i] = cards[j]
	}
	return best, combo
}

// nextCombination advances idx to the next k-subset of [0,n) in lexicographic order
func nextCombination(idx []int, n int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
