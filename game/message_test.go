package game

import (
	"encoding/json"
	"testing"
)

func TestEnvelopeStateRoundTrip(t *testing.T) {
	raw := []byte(`{
		"type": "update_game",
		"data": {
			"time": 30,
			"order_book": {
				"bids": {
					"hearts": {"order_id": 4, "player_id": "alice", "price": 7},
					"clubs": {"order_id": -1, "player_id": "", "price": 0}
				},
				"offers": {
					"spades": {"order_id": 5, "player_id": "bob", "price": 9}
				}
			},
			"player": {"balance": 42, "hand": {"hearts": 2, "spades": 1}}
		}
	}`)

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Type != MsgUpdateGame {
		t.Fatalf("unexpected type %q", env.Type)
	}

	state, err := env.State()
	if err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Time == nil || *state.Time != 30 {
		t.Fatalf("unexpected time %v", state.Time)
	}
	if state.RoundOver() {
		t.Fatal("time 30 must not be terminal")
	}
	if bid := state.OrderBook.Bids[Hearts]; !bid.Live() || bid.Price != 7 || bid.PlayerID != "alice" {
		t.Fatalf("unexpected hearts bid %+v", bid)
	}
	if state.OrderBook.Bids[Clubs].Live() {
		t.Fatal("sentinel clubs bid reported live")
	}
	if state.Player.Balance != 42 || state.Player.Hand[Hearts] != 2 {
		t.Fatalf("unexpected player state %+v", state.Player)
	}

	book, ok := env.Book()
	if !ok {
		t.Fatal("Book() must find the order book in an update_game payload")
	}
	if book.Offers[Spades].Price != 9 {
		t.Fatalf("unexpected offer %+v", book.Offers[Spades])
	}
}

func TestEnvelopeRoundOverSignal(t *testing.T) {
	zero := 0
	if !(RoundState{Time: &zero}).RoundOver() {
		t.Fatal("time 0 must be terminal")
	}
	if (RoundState{}).RoundOver() {
		t.Fatal("absent time must not be terminal")
	}
}

func TestEnvelopeAcceptedAndError(t *testing.T) {
	env := Envelope{Type: MsgAcceptOrder, Data: []byte(
		`{"accepted_order": {"buyer_id": "a", "seller_id": "b", "suit": "clubs", "price": 6}}`)}
	accepted, err := env.Accepted()
	if err != nil {
		t.Fatalf("decode accepted: %v", err)
	}
	if accepted.BuyerID != "a" || accepted.SellerID != "b" || accepted.Suit != Clubs || accepted.Price != 6 {
		t.Fatalf("unexpected accepted order %+v", accepted)
	}

	errEnv := Envelope{Type: MsgError, Data: []byte(`{"message": "insufficient funds"}`)}
	if !errEnv.IsError() {
		t.Fatal("error envelope not recognized")
	}
	if got := errEnv.ErrorMessage(); got != "insufficient funds" {
		t.Fatalf("unexpected error message %q", got)
	}

	if _, ok := errEnv.Book(); ok {
		t.Fatal("Book() must report absent for payloads without order_book")
	}
}
