// Package render turns server messages into human-readable terminal output.
// It is a pure consumer: strings out, no feedback into protocol state.
package render

import (
	"fmt"
	"strings"

	"github.com/Bhavyaa-T/FiggieBot/game"
)

// OrderBook renders the live entries of a book, one line per order, bids
// first. Sentinel slots are skipped; a book with only sentinels renders to
// the empty string.
func OrderBook(book game.OrderBook) string {
	var lines []string
	for _, suit := range game.Suits {
		if order, ok := book.Bids[suit]; ok && order.Live() {
			lines = append(lines, BidStyle.Render(
				fmt.Sprintf("%s bids %s @ %d", order.PlayerID, suit, order.Price)))
		}
	}
	for _, suit := range game.Suits {
		if order, ok := book.Offers[suit]; ok && order.Live() {
			lines = append(lines, OfferStyle.Render(
				fmt.Sprintf("%s offers %s @ %d", order.PlayerID, suit, order.Price)))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return HeaderStyle.Render("Order book:") + "\n" + strings.Join(lines, "\n")
}

// Player renders the agent's balance and hand.
func Player(state game.PlayerState) string {
	hand := make([]string, 0, len(game.Suits))
	for _, suit := range game.Suits {
		hand = append(hand, fmt.Sprintf("%s:%d", suit, state.Hand[suit]))
	}
	return fmt.Sprintf("balance %d | hand %s", state.Balance, strings.Join(hand, " "))
}

// Message renders one server envelope, appending the order book whenever the
// payload carries one. Unknown envelope types are dumped generically.
func Message(env *game.Envelope) string {
	var lines []string

	switch env.Type {
	case game.MsgError:
		lines = append(lines, WarningStyle.Render(env.ErrorMessage()))
	case game.MsgAcceptOrder:
		if accepted, err := env.Accepted(); err == nil {
			lines = append(lines, TradeStyle.Render(fmt.Sprintf(
				"Trade executed: %s bought %s from %s @ %d",
				accepted.BuyerID, accepted.Suit, accepted.SellerID, accepted.Price)))
		}
	case game.MsgPlaceOrder:
		if msg, err := env.Message(); err == nil {
			lines = append(lines, "New order: "+msg)
		}
	case game.MsgUpdateGame:
		if state, err := env.State(); err == nil {
			if state.Time != nil && !state.RoundOver() {
				lines = append(lines, MutedStyle.Render(
					fmt.Sprintf("Time remaining: %ds", *state.Time)))
			}
			lines = append(lines, Player(state.Player))
		}
	default:
		lines = append(lines, MutedStyle.Render(
			fmt.Sprintf("Message %q: %s", env.Type, string(env.Data))))
	}

	if book, ok := env.Book(); ok {
		if rendered := OrderBook(book); rendered != "" {
			lines = append(lines, rendered)
		}
	}
	return strings.Join(lines, "\n")
}
