package game

import "encoding/json"

// Server message kinds. Kinds outside this set are tolerated and rendered
// generically.
const (
	MsgUpdateGame   = "update_game"
	MsgAcceptOrder  = "accept_order"
	MsgPlaceOrder   = "place_order"
	MsgError        = "error"
	MsgRoundStarted = "round_started"
)

// Envelope is the {type, data} frame every server message arrives in.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// IsError reports whether the envelope is a protocol-level rejection.
func (e *Envelope) IsError() bool {
	return e.Type == MsgError
}

// ErrorMessage extracts the message of an error envelope.
func (e *Envelope) ErrorMessage() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return string(e.Data)
	}
	return payload.Message
}

// Message extracts the free-text message of a place_order or error envelope.
func (e *Envelope) Message() (string, error) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// State decodes the RoundState payload of an update_game envelope.
func (e *Envelope) State() (RoundState, error) {
	var state RoundState
	if err := json.Unmarshal(e.Data, &state); err != nil {
		return RoundState{}, err
	}
	return state, nil
}

// Accepted decodes the executed trade of an accept_order envelope.
func (e *Envelope) Accepted() (AcceptedOrder, error) {
	var payload struct {
		AcceptedOrder AcceptedOrder `json:"accepted_order"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return AcceptedOrder{}, err
	}
	return payload.AcceptedOrder, nil
}

// Book extracts an order book from the payload when one is present,
// regardless of the envelope type.
func (e *Envelope) Book() (OrderBook, bool) {
	var payload struct {
		OrderBook *OrderBook `json:"order_book"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil || payload.OrderBook == nil {
		return OrderBook{}, false
	}
	return *payload.OrderBook, true
}
