package deck

import "fmt"

// Rank represents a card rank, ascending from Two to Ace.
// The numeric value is the rank's index in that order (0-12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank as a string
func (r Rank) String() string {
	ranks := [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	if int(r) >= len(ranks) {
		return fmt.Sprintf("rank(%d)", uint8(r))
	}
	return ranks[r]
}

// Suit represents a card suit, in deck construction order.
type Suit uint8

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

// String returns the suit as a string
func (s Suit) String() string {
	suits := [...]string{"spades", "clubs", "diamonds", "hearts"}
	if int(s) >= len(suits) {
		return fmt.Sprintf("suit(%d)", uint8(s))
	}
	return suits[s]
}

// Card represents a playing card. Cards are comparable values;
// two cards are equal iff rank and suit both match.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card as a rank-suit pair (e.g., "(A, spades)")
func (c Card) String() string {
	return fmt.Sprintf("(%s, %s)", c.Rank, c.Suit)
}
