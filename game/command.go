package game

import (
	"strconv"
	"strings"
)

// CmdKind enumerates the verbs the interactive agent understands.
type CmdKind int

const (
	CmdNone CmdKind = iota
	CmdHelp
	CmdFetch
	CmdBid
	CmdOffer
	CmdAcceptBid
	CmdAcceptOffer
	CmdCancelBid
	CmdCancelOffer
)

// Command is one parsed input line. Suit and Price are only meaningful for
// the kinds whose grammar carries them.
type Command struct {
	Kind  CmdKind
	Suit  Suit
	Price int
}

// ParseSuit resolves a suit token, accepting the full name or its
// single-letter alias in any case.
func ParseSuit(token string) (Suit, bool) {
	switch strings.ToLower(token) {
	case "hearts", "h":
		return Hearts, true
	case "clubs", "c":
		return Clubs, true
	case "spades", "s":
		return Spades, true
	case "diamonds", "d":
		return Diamonds, true
	default:
		return "", false
	}
}

// ParseCommand parses one line of input into a Command. Malformed input
// (unknown verb, wrong token count, bad suit, non-integer price) returns
// ok=false and the zero Command; the caller re-prompts rather than fails.
func ParseCommand(line string) (Command, bool) {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) == 0 {
		return Command{}, false
	}

	switch tokens[0] {
	case "help", "h":
		if len(tokens) != 1 {
			return Command{}, false
		}
		return Command{Kind: CmdHelp}, true
	case "fetch", "f":
		if len(tokens) != 1 {
			return Command{}, false
		}
		return Command{Kind: CmdFetch}, true
	case "bid", "b":
		return parsePriced(CmdBid, tokens)
	case "offer", "o":
		return parsePriced(CmdOffer, tokens)
	case "accept_bid", "ab":
		return parseSuited(CmdAcceptBid, tokens)
	case "accept_offer", "ao":
		return parseSuited(CmdAcceptOffer, tokens)
	case "cancel_bid", "cb":
		return parseSuited(CmdCancelBid, tokens)
	case "cancel_offer", "co":
		return parseSuited(CmdCancelOffer, tokens)
	default:
		return Command{}, false
	}
}

func parsePriced(kind CmdKind, tokens []string) (Command, bool) {
	if len(tokens) != 3 {
		return Command{}, false
	}
	suit, ok := ParseSuit(tokens[1])
	if !ok {
		return Command{}, false
	}
	price, err := strconv.Atoi(tokens[2])
	if err != nil {
		return Command{}, false
	}
	return Command{Kind: kind, Suit: suit, Price: price}, true
}

func parseSuited(kind CmdKind, tokens []string) (Command, bool) {
	if len(tokens) != 2 {
		return Command{}, false
	}
	suit, ok := ParseSuit(tokens[1])
	if !ok {
		return Command{}, false
	}
	return Command{Kind: kind, Suit: suit}, true
}

// HelpText is the command reference shown by the interactive agent.
func HelpText() string {
	return strings.Join([]string{
		"Commands:",
		"help (h)",
		"fetch (f): fetch the game state from the server",
		"bid (b): bid <suit> <price>",
		"offer (o): offer <suit> <price>",
		"accept_bid (ab): accept_bid <suit>",
		"accept_offer (ao): accept_offer <suit>",
		"cancel_bid (cb): cancel_bid <suit>",
		"cancel_offer (co): cancel_offer <suit>",
		"suits: hearts (h), clubs (c), spades (s), diamonds (d)",
	}, "\n")
}
