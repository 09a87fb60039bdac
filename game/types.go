package game

// Suit identifies one of the four tradable card suits.
type Suit string

const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
)

// Suits lists every suit in canonical order. Code that scans the order book
// iterates this slice instead of a map so a run is deterministic.
var Suits = []Suit{Hearts, Clubs, Spades, Diamonds}

// SentinelOrderID marks an empty order-book slot. Every suit always has
// exactly one bid slot and one offer slot; the server fills vacant slots with
// this id rather than omitting the entry.
const SentinelOrderID = -1

// Order is one standing bid or offer for a suit.
type Order struct {
	OrderID  int    `json:"order_id"`
	PlayerID string `json:"player_id"`
	Price    int    `json:"price"`
}

// Live reports whether the slot holds a real order.
func (o Order) Live() bool {
	return o.OrderID != SentinelOrderID
}

// OrderBook is the per-suit best bid and offer. Clients hold it as a
// read-only snapshot that is replaced wholesale on every fetch, never patched.
type OrderBook struct {
	Bids   map[Suit]Order `json:"bids"`
	Offers map[Suit]Order `json:"offers"`
}

// PlayerState is the acting agent's own resources. The authoritative copy
// lives server-side.
type PlayerState struct {
	Balance int          `json:"balance"`
	Hand    map[Suit]int `json:"hand"`
}

// RoundState is one authoritative snapshot of the round as seen by a player.
// Time is nil when the server omitted it; a value of zero is the terminal
// signal for the round.
type RoundState struct {
	Time      *int        `json:"time"`
	OrderBook OrderBook   `json:"order_book"`
	Player    PlayerState `json:"player"`
}

// RoundOver reports whether the snapshot carries the terminal time signal.
func (s RoundState) RoundOver() bool {
	return s.Time != nil && *s.Time == 0
}

// AcceptedOrder describes an executed trade inside an accept_order message.
type AcceptedOrder struct {
	BuyerID  string `json:"buyer_id"`
	SellerID string `json:"seller_id"`
	Suit     Suit   `json:"suit"`
	Price    int    `json:"price"`
}
