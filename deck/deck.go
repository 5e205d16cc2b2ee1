// deck/deck.go
package deck

import (
	"errors"
	"math/rand"
)

// Suit 扑克牌花色
type Suit string

const (
	SuitSpades   Suit = "spades"
	SuitHearts   Suit = "hearts"
	SuitClubs    Suit = "clubs"
	SuitDiamonds Suit = "diamonds"
)

// Suits lists every suit in a fixed order.
var Suits = []Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}

// Rank is a card value, ace low: 1 (ace) through 13 (king).
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Card 是不可变的牌面值
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"value"`
}

// Deck is an ordered pile of cards. Draw pops from the end.
type Deck []Card

// ErrEmptyDeck is returned by Draw when no cards remain.
var ErrEmptyDeck = errors.New("deck is empty")

// Generate builds a full 52-card deck, one card per suit and rank
// combination, uniformly shuffled (Fisher-Yates).
func Generate() Deck {
	deck := make(Deck, 0, 52)
	for _, suit := range Suits {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return card, nil
}
