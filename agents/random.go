package agents

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Bhavyaa-T/FiggieBot/client"
	"github.com/Bhavyaa-T/FiggieBot/game"
	"github.com/Bhavyaa-T/FiggieBot/render"
)

// RandomConfig parameterizes the autonomous bot. Price ranges are inclusive
// and independent per side.
type RandomConfig struct {
	PlayerID     string
	BidLow       int
	BidHigh      int
	OfferLow     int
	OfferHigh    int
	TickInterval time.Duration
	PollInterval time.Duration
	StartRound   bool
	Seed         int64 // 0 seeds from the clock
}

// Random is a greedy single-pass strategy: each tick it posts one random bid
// or offer, then accepts at most one bid and one offer it can afford. Never
// trades against itself.
type Random struct {
	cfg   RandomConfig
	rand  *rand.Rand
	log   *zap.Logger
	out   io.Writer
	sleep func(time.Duration)
}

// NewRandom builds the bot.
func NewRandom(cfg RandomConfig, log *zap.Logger) *Random {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		cfg:   cfg,
		rand:  rand.New(rand.NewSource(seed)),
		log:   log,
		out:   os.Stdout,
		sleep: time.Sleep,
	}
}

// Run joins the round, waits for it to start, then ticks until the round
// ends or the connection dies. A closed connection is a normal, logged
// termination; anything else unexpected is caught, logged, and fatal for the
// session.
func (b *Random) Run(ctx context.Context, gc GameClient) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
			b.log.Error("run loop aborted", zap.Any("cause", r))
		}
	}()

	if err := gc.Join(ctx, b.cfg.PlayerID); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	if b.cfg.StartRound {
		if err := gc.StartRound(ctx); err != nil {
			return fmt.Errorf("start round: %w", err)
		}
	}
	if err := waitForRoundStart(ctx, gc, b.cfg.PollInterval, b.sleep); err != nil {
		return fmt.Errorf("await round start: %w", err)
	}
	b.log.Info("round started", zap.String("player", b.cfg.PlayerID))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := b.step(ctx, gc)
		if err != nil {
			if client.IsClosed(err) {
				b.log.Info("connection closed, ending session", zap.Error(err))
				return nil
			}
			return err
		}
		if done {
			return nil
		}
		b.sleep(b.cfg.TickInterval)
	}
}

// step runs one tick: fetch, terminal check, one random order, at most one
// accept per side.
func (b *Random) step(ctx context.Context, gc GameClient) (bool, error) {
	state, env, err := gc.FetchState(ctx)
	if err != nil {
		return false, err
	}
	if env != nil {
		if line := render.Message(env); line != "" {
			fmt.Fprintln(b.out, line)
		}
	}
	if env == nil || env.Type != game.MsgUpdateGame {
		return false, nil
	}

	if state.RoundOver() {
		fmt.Fprintln(b.out, "ROUND ENDED")
		fmt.Fprintln(b.out, render.Player(state.Player))
		b.log.Info("round ended",
			zap.Int("final_balance", state.Player.Balance),
			zap.Any("final_hand", state.Player.Hand))
		return true, nil
	}

	if err := b.placeRandomOrder(ctx, gc); err != nil {
		return false, err
	}
	return false, b.acceptEligible(ctx, gc, state)
}

// placeRandomOrder posts a bid or an offer with 50/50 odds, uniform random
// suit and in-range price.
func (b *Random) placeRandomOrder(ctx context.Context, gc GameClient) error {
	suit := game.Suits[b.rand.Intn(len(game.Suits))]
	if b.rand.Intn(2) == 0 {
		price := b.randPrice(b.cfg.BidLow, b.cfg.BidHigh)
		b.log.Info("placing bid", zap.String("suit", string(suit)), zap.Int("price", price))
		return b.handleActionResult(gc.PlaceBid(ctx, b.cfg.PlayerID, suit, price))
	}
	price := b.randPrice(b.cfg.OfferLow, b.cfg.OfferHigh)
	b.log.Info("placing offer", zap.String("suit", string(suit)), zap.Int("price", price))
	return b.handleActionResult(gc.PlaceOffer(ctx, b.cfg.PlayerID, suit, price))
}

// acceptEligible takes at most one bid and one offer from the snapshot.
func (b *Random) acceptEligible(ctx context.Context, gc GameClient, state game.RoundState) error {
	if suit, bid, ok := firstSellableBid(state, b.cfg.PlayerID); ok {
		b.log.Info("selling into bid",
			zap.String("suit", string(suit)),
			zap.Int("price", bid.Price),
			zap.String("buyer", bid.PlayerID))
		if err := b.handleActionResult(gc.AcceptBid(ctx, b.cfg.PlayerID, suit)); err != nil {
			return err
		}
	}
	if suit, offer, ok := firstAffordableOffer(state, b.cfg.PlayerID); ok {
		b.log.Info("buying from offer",
			zap.String("suit", string(suit)),
			zap.Int("price", offer.Price),
			zap.String("seller", offer.PlayerID))
		if err := b.handleActionResult(gc.AcceptOffer(ctx, b.cfg.PlayerID, suit)); err != nil {
			return err
		}
	}
	return nil
}

// handleActionResult renders the server's answer to a mutating action.
// Protocol rejections are survivable; only transport failures propagate.
func (b *Random) handleActionResult(env *game.Envelope, err error) error {
	if err != nil {
		if perr, ok := client.AsProtocolError(err); ok {
			b.log.Warn("action rejected", zap.String("op", perr.Op), zap.String("message", perr.Message))
			return nil
		}
		return err
	}
	if env != nil {
		if line := render.Message(env); line != "" {
			fmt.Fprintln(b.out, line)
		}
	}
	return nil
}

func (b *Random) randPrice(low, high int) int {
	return low + b.rand.Intn(high-low+1)
}
