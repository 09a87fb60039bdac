package agents

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Bhavyaa-T/FiggieBot/client"
	"github.com/Bhavyaa-T/FiggieBot/game"
	"github.com/Bhavyaa-T/FiggieBot/render"
)

// HumanConfig parameterizes the interactive agent.
type HumanConfig struct {
	PlayerID     string
	PollInterval time.Duration
	StartRound   bool
}

// Human reads commands from an input stream, dispatches them to the server,
// and refreshes the rendered state after every command. Malformed input is
// re-prompted, never fatal.
type Human struct {
	cfg   HumanConfig
	log   *zap.Logger
	in    io.Reader
	out   io.Writer
	sleep func(time.Duration)
}

// NewHuman builds the interactive agent reading from stdin.
func NewHuman(cfg HumanConfig, log *zap.Logger) *Human {
	return &Human{
		cfg:   cfg,
		log:   log,
		in:    os.Stdin,
		out:   os.Stdout,
		sleep: time.Sleep,
	}
}

// Run joins the round and enters the prompt loop until the input stream
// ends, the round ends, or the connection dies.
func (h *Human) Run(ctx context.Context, gc GameClient) error {
	if err := gc.Join(ctx, h.cfg.PlayerID); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	if h.cfg.StartRound {
		if err := gc.StartRound(ctx); err != nil {
			return fmt.Errorf("start round: %w", err)
		}
	}

	fmt.Fprintln(h.out, game.HelpText())
	fmt.Fprintln(h.out, "Waiting for the round to start...")
	if err := waitForRoundStart(ctx, gc, h.cfg.PollInterval, h.sleep); err != nil {
		return fmt.Errorf("await round start: %w", err)
	}

	scanner := bufio.NewScanner(h.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(h.out, "Make an action (type h or help for help): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil // EOF
		}

		cmd, ok := game.ParseCommand(scanner.Text())
		if !ok {
			fmt.Fprintln(h.out, "The command you entered is malformed.")
			continue
		}

		done, err := h.runCommand(ctx, gc, cmd)
		if err != nil {
			if client.IsClosed(err) {
				h.log.Info("connection closed, ending session", zap.Error(err))
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}
}

// runCommand executes one parsed command and then unconditionally refreshes
// and renders the state, so every command doubles as a fetch.
func (h *Human) runCommand(ctx context.Context, gc GameClient, cmd game.Command) (bool, error) {
	var env *game.Envelope
	var err error

	switch cmd.Kind {
	case game.CmdHelp:
		fmt.Fprintln(h.out, game.HelpText())
	case game.CmdFetch:
		// the refresh below is the fetch
	case game.CmdBid:
		env, err = gc.PlaceBid(ctx, h.cfg.PlayerID, cmd.Suit, cmd.Price)
	case game.CmdOffer:
		env, err = gc.PlaceOffer(ctx, h.cfg.PlayerID, cmd.Suit, cmd.Price)
	case game.CmdAcceptBid:
		env, err = gc.AcceptBid(ctx, h.cfg.PlayerID, cmd.Suit)
	case game.CmdAcceptOffer:
		env, err = gc.AcceptOffer(ctx, h.cfg.PlayerID, cmd.Suit)
	case game.CmdCancelBid:
		env, err = gc.CancelBid(ctx, h.cfg.PlayerID, cmd.Suit)
	case game.CmdCancelOffer:
		env, err = gc.CancelOffer(ctx, h.cfg.PlayerID, cmd.Suit)
	}
	if err != nil {
		if perr, ok := client.AsProtocolError(err); ok {
			fmt.Fprintln(h.out, render.WarningStyle.Render(perr.Error()))
		} else {
			return false, err
		}
	}
	if env != nil {
		if line := render.Message(env); line != "" {
			fmt.Fprintln(h.out, line)
		}
	}

	state, stateEnv, err := gc.FetchState(ctx)
	if err != nil {
		return false, err
	}
	if stateEnv != nil {
		if line := render.Message(stateEnv); line != "" {
			fmt.Fprintln(h.out, line)
		}
	}
	if stateEnv != nil && stateEnv.Type == game.MsgUpdateGame && state.RoundOver() {
		fmt.Fprintln(h.out, "ROUND ENDED")
		fmt.Fprintln(h.out, render.Player(state.Player))
		return true, nil
	}
	return false, nil
}
