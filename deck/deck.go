// Package deck provides an immutable, ordered 52-card deck and a
// strength ranking over its cards. Deck satisfies seq.Sequence[Card],
// so the generic algorithms in the seq package (random choice,
// sort-by-key, reversal, membership) operate on it directly.
package deck

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/decklab/cardseq/seq"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck is an immutable ordered sequence of the 52 standard cards.
// Construction order is fixed: suits in declaration order
// (spades, clubs, diamonds, hearts), ranks ascending 2..A within each
// suit. Index 0 is (2, spades), index 51 is (A, hearts).
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck
func New() *Deck {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Hearts; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

// Len returns the number of cards, always 52.
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at pos. Negative positions count from the end
// (-1 is the last card). Positions outside [-52, 51] return an error
// wrapping seq.ErrOutOfRange.
func (d *Deck) At(pos int) (Card, error) {
	n := len(d.cards)
	i := pos
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return Card{}, fmt.Errorf("%w: %d with length %d", seq.ErrOutOfRange, pos, n)
	}
	return d.cards[i], nil
}

// Slice returns the half-open range [start, stop) as a new slice.
// Bounds follow slice-clamping semantics: negative bounds count from
// the end, then both clamp to [0, Len]. An inverted range is empty.
// The result does not alias deck storage.
func (d *Deck) Slice(start, stop int) []Card {
	n := len(d.cards)
	start = clamp(start, n)
	stop = clamp(stop, n)
	if start >= stop {
		return []Card{}
	}
	out := make([]Card, stop-start)
	copy(out, d.cards[start:stop])
	return out
}

// clamp resolves a slice bound: negatives count from the end, then the
// result is limited to [0, n].
func clamp(bound, n int) int {
	if bound < 0 {
		bound += n
	}
	if bound < 0 {
		return 0
	}
	if bound > n {
		return n
	}
	return bound
}

// All returns an iterator over the cards in storage order.
// Each call starts a fresh pass.
func (d *Deck) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward returns an iterator over the cards in reverse storage order.
func (d *Deck) Backward() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i := len(d.cards) - 1; i >= 0; i-- {
			if !yield(d.cards[i]) {
				return
			}
		}
	}
}

// Contains reports whether c occurs in the deck.
func (d *Deck) Contains(c Card) bool {
	for _, w := range d.cards {
		if w == c {
			return true
		}
	}
	return false
}

// Shuffled returns a new deck holding the same cards in random order.
// The receiver is unchanged. A nil rng uses the global source.
func (d *Deck) Shuffled(rng *rand.Rand) *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	swap := func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	}
	if rng != nil {
		rng.Shuffle(len(cards), swap)
	} else {
		rand.Shuffle(len(cards), swap)
	}
	return &Deck{cards: cards}
}

var _ seq.Sequence[Card] = (*Deck)(nil)
