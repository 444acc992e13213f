// internal/game/command.go
package game

import (
	"fmt"
	"strings"

	"github.com/cardfelt/uno/internal/deck"
)

// CommandKind enumerates the actions the text protocol can express.
type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandDraw
	CommandForfeit
)

// Command is a parsed player instruction. Card descriptors are matched
// against the literal "{color} {value}" rendering, case-insensitive; Wild
// and Draw4 match by value alone and take a trailing color word as the
// declaration ("play wild blue", "play draw4 red").
type Command struct {
	Kind     CommandKind
	Card     deck.Card
	Color    deck.Color
	HasColor bool
}

// ParseCommand translates one line of free text into a Command.
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "draw":
		return Command{Kind: CommandDraw}, nil
	case "forfeit":
		return Command{Kind: CommandForfeit}, nil
	case "play":
		return parsePlay(fields[1:])
	}
	return Command{}, fmt.Errorf("unknown command %q, try: play <card>, draw, forfeit", fields[0])
}

func parsePlay(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("play what? e.g. 'play red 7' or 'play wild blue'")
	}

	// Wild-family: value word first, optional declared color after.
	if v, ok := deck.ParseValue(args[0]); ok && (v == deck.Wild || v == deck.Draw4) {
		cmd := Command{
			Kind: CommandPlay,
			Card: deck.Card{Color: deck.ColorWild, Value: v},
		}
		if len(args) >= 2 {
			color, ok := deck.ParseColor(args[1])
			if !ok {
				return Command{}, fmt.Errorf("%q is not a color", args[1])
			}
			cmd.Color = color
			cmd.HasColor = true
		}
		return cmd, nil
	}

	if len(args) < 2 {
		return Command{}, fmt.Errorf("card descriptors read '<color> <value>', e.g. 'play green skip'")
	}
	color, ok := deck.ParseColor(args[0])
	if !ok {
		return Command{}, fmt.Errorf("%q is not a color", args[0])
	}
	value, ok := deck.ParseValue(args[1])
	if !ok {
		return Command{}, fmt.Errorf("%q is not a card value", args[1])
	}
	if value == deck.Wild || value == deck.Draw4 {
		return Command{}, fmt.Errorf("%s cards carry no color, play them by value alone", value)
	}
	return Command{
		Kind: CommandPlay,
		Card: deck.Card{Color: color, Value: value},
	}, nil
}
