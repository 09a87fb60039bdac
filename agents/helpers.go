package agents

import "github.com/Bhavyaa-T/FiggieBot/game"

// firstSellableBid scans the bid side in canonical suit order and returns the
// first bid the player can sell into: live, not their own, and for a suit
// they hold at least one of.
func firstSellableBid(state game.RoundState, playerID string) (game.Suit, game.Order, bool) {
	for _, suit := range game.Suits {
		bid, ok := state.OrderBook.Bids[suit]
		if !ok || !bid.Live() || bid.PlayerID == playerID {
			continue
		}
		if state.Player.Hand[suit] > 0 {
			return suit, bid, true
		}
	}
	return "", game.Order{}, false
}

// firstAffordableOffer scans the offer side in canonical suit order and
// returns the first offer the player can buy: live, not their own, and priced
// within their balance.
func firstAffordableOffer(state game.RoundState, playerID string) (game.Suit, game.Order, bool) {
	for _, suit := range game.Suits {
		offer, ok := state.OrderBook.Offers[suit]
		if !ok || !offer.Live() || offer.PlayerID == playerID {
			continue
		}
		if offer.Price <= state.Player.Balance {
			return suit, offer, true
		}
	}
	return "", game.Order{}, false
}
