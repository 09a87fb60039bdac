package client

import "github.com/Bhavyaa-T/FiggieBot/game"

// Request kinds understood by the server.
const (
	reqJoin         = "join"
	reqStartRound   = "start_round"
	reqRoundStarted = "round_started"
	reqGetState     = "get_state"
	reqPlaceBid     = "place_bid"
	reqPlaceOffer   = "place_offer"
	reqAcceptBid    = "accept_bid"
	reqAcceptOffer  = "accept_offer"
	reqCancelBid    = "cancel_bid"
	reqCancelOffer  = "cancel_offer"
)

// request mirrors the server's {type, data} envelope on the outbound side.
type request struct {
	Type string      `json:"type"`
	Data requestData `json:"data"`
}

// requestData carries the union of request payload fields; unset fields are
// omitted on the wire.
type requestData struct {
	PlayerID string    `json:"player_id,omitempty"`
	Suit     game.Suit `json:"suit,omitempty"`
	Price    int       `json:"price,omitempty"`
}
