// Package agents holds the two trading agents: an interactive human-driven
// one and an autonomous random-strategy bot. Both drive the game through the
// same GameClient surface.
package agents

import (
	"context"
	"time"

	"github.com/Bhavyaa-T/FiggieBot/game"
)

// GameClient abstracts the protocol surface the agents need from the server
// connection. *client.Client satisfies it; tests substitute fakes.
type GameClient interface {
	Join(ctx context.Context, playerID string) error
	StartRound(ctx context.Context) error
	RoundStarted(ctx context.Context) (bool, error)
	FetchState(ctx context.Context) (game.RoundState, *game.Envelope, error)
	PlaceBid(ctx context.Context, playerID string, suit game.Suit, price int) (*game.Envelope, error)
	PlaceOffer(ctx context.Context, playerID string, suit game.Suit, price int) (*game.Envelope, error)
	AcceptBid(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error)
	AcceptOffer(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error)
	CancelBid(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error)
	CancelOffer(ctx context.Context, playerID string, suit game.Suit) (*game.Envelope, error)
}

// Agent is a trading agent bound to one connection for one session.
type Agent interface {
	Run(ctx context.Context, gc GameClient) error
}

// waitForRoundStart busy-polls the server until the round is active, sleeping
// interval between negative polls. Staleness of up to one interval is
// accepted; this is a poll, not a subscription.
func waitForRoundStart(ctx context.Context, gc GameClient, interval time.Duration, sleep func(time.Duration)) error {
	for {
		started, err := gc.RoundStarted(ctx)
		if err != nil {
			return err
		}
		if started {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		sleep(interval)
	}
}
