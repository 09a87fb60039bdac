// Package client is the protocol layer between an agent and the game server:
// typed requests out, typed responses back, one correlated response per
// request over a single persistent websocket.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Bhavyaa-T/FiggieBot/game"
)

const handshakeTimeout = 10 * time.Second

// Client issues game requests over one websocket connection. It is owned by a
// single agent goroutine; requests are strictly sequential, never pipelined.
type Client struct {
	conn *websocket.Conn
	log  *zap.Logger
}

// Dial connects to the game server at url.
func Dial(ctx context.Context, url string, log *zap.Logger) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	log.Info("connected", zap.String("url", url))
	return &Client{conn: conn, log: log}, nil
}

// Close sends a close frame and tears down the connection. Safe to call after
// a transport failure.
func (c *Client) Close() error {
	deadline := time.Now().Add(time.Second)
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return c.conn.Close()
}

// roundTrip sends one request and reads its correlated response.
func (c *Client) roundTrip(ctx context.Context, req request) (*game.Envelope, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		_ = c.conn.SetReadDeadline(deadline)
	} else {
		_ = c.conn.SetWriteDeadline(time.Time{})
		_ = c.conn.SetReadDeadline(time.Time{})
	}

	if err := c.conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("send %s: %w", req.Type, err)
	}
	var env game.Envelope
	if err := c.conn.ReadJSON(&env); err != nil {
		return nil, fmt.Errorf("await %s response: %w", req.Type, err)
	}
	return &env, nil
}

// Join registers the agent under playerID for the current or next round. An
// error envelope (name taken, round not joinable) comes back as a
// ProtocolError.
func (c *Client) Join(ctx context.Context, playerID string) error {
	env, err := c.roundTrip(ctx, request{Type: reqJoin, Data: requestData{PlayerID: playerID}})
	if err != nil {
		return err
	}
	if env.IsError() {
		return &ProtocolError{Op: reqJoin, Message: env.ErrorMessage()}
	}
	return nil
}

// StartRound asks the server to begin the round. The server decides policy;
// a duplicate or late call is answered, not fatal.
func (c *Client) StartRound(ctx context.Context) error {
	env, err := c.roundTrip(ctx, request{Type: reqStartRound})
	if err != nil {
		return err
	}
	if env.IsError() {
		c.log.Warn("start_round rejected", zap.String("message", env.ErrorMessage()))
	}
	return nil
}

// RoundStarted polls whether the round is active.
func (c *Client) RoundStarted(ctx context.Context) (bool, error) {
	env, err := c.roundTrip(ctx, request{Type: reqRoundStarted})
	if err != nil {
		return false, err
	}
	if env.IsError() {
		return false, &ProtocolError{Op: reqRoundStarted, Message: env.ErrorMessage()}
	}
	var payload struct {
		Started bool `json:"started"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return false, fmt.Errorf("decode round_started response: %w", err)
	}
	return payload.Started, nil
}

// FetchState pulls the latest authoritative snapshot. The raw envelope is
// always returned so callers can render non-update messages; state is only
// meaningful when the envelope type is update_game.
func (c *Client) FetchState(ctx context.Context) (game.RoundState, *game.Envelope, error) {
	env, err := c.roundTrip(ctx, request{Type: reqGetState})
	if err != nil {
		return game.RoundState{}, nil, err
	}
	if env.Type != game.MsgUpdateGame {
		return game.RoundState{}, env, nil
	}
	state, err := env.State()
	if err != nil {
		return game.RoundState{}, env, fmt.Errorf("decode state: %w", err)
	}
	return state, env, nil
}

// PlaceBid places a standing bid. Price must be a positive integer; that is
// checked locally so an interpreter miss never costs a round trip.
func (c *Client) PlaceBid(ctx context.Context, playerID string, suit game.Suit, price int) (*game.Envelope, error) {
	return c.placeOrder(ctx, reqPlaceBid, playerID, suit, price)
}

// PlaceOffer places a standing offer, with the same local price check as
// PlaceBid.
func (c *Client) PlaceOffer(ctx context.Context, playerID string, suit game.Suit, price int) (*game.Envelope, error) {
	return c.placeOrder(ctx, reqPlaceOffer, playerID, suit, price)
}

func (c *Client) placeOrder(ctx context.Context, kind, playerID string, suit game.Suit, price int) (*game.Envelope, error) {
	if price <= 0 {
		return nil, &ProtocolError{Op: kind, Message: "price must be a positive integer"}
	}
	return c.roundTrip(ctx, request{Type: kind, Data: requestData{PlayerID: playerID, Suit: suit, Price: price}})
}

// AcceptBid sells one unit of suit into the standing bid. Slot state and
// ownership are server-enforced; a rejection arrives as an error envelope.
func (c *Client) AcceptBid(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error) {
	return c.suitOp(ctx, reqAcceptBid, playerID, suit)
}

// AcceptOffer buys one unit of suit from the standing offer.
func (c *Client) AcceptOffer(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error) {
	return c.suitOp(ctx, reqAcceptOffer, playerID, suit)
}

// CancelBid withdraws the agent's standing bid on suit. Only the owner may
// cancel; the server enforces that, not the client.
func (c *Client) CancelBid(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error) {
	return c.suitOp(ctx, reqCancelBid, playerID, suit)
}

// CancelOffer withdraws the agent's standing offer on suit.
func (c *Client) CancelOffer(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error) {
	return c.suitOp(ctx, reqCancelOffer, playerID, suit)
}

func (c *Client) suitOp(ctx context.Context, kind, playerID string, suit game.Suit) (*game.Envelope, error) {
	return c.roundTrip(ctx, request{Type: kind, Data: requestData{PlayerID: playerID, Suit: suit}})
}
