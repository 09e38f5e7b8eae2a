package deck

// suitStrength breaks ties between equal ranks:
// clubs < diamonds < hearts < spades.
var suitStrength = [...]int{
	Spades:   3,
	Clubs:    0,
	Diamonds: 1,
	Hearts:   2,
}

// Strength ranks a card with rank dominant and suit as tiebreak.
// Over a full deck it is a bijection onto 0..51: (2, clubs) is 0,
// (A, spades) is 51. It is a package function rather than a Card
// method so game-specific rankings can coexist with the card type.
func Strength(c Card) int {
	return 4*int(c.Rank) + suitStrength[c.Suit]
}
