// internal/deck/card.go
package deck

import (
	"fmt"
	"strings"
)

// Color is a card's suit. ColorWild is the sentinel for color-less cards;
// their effective color is declared at play time.
type Color int

const (
	ColorWild Color = iota
	Red
	Yellow
	Green
	Blue
)

// Precedence lists the concrete colors in tie-break order for the bot's
// wild color declaration.
var Precedence = [...]Color{Red, Yellow, Green, Blue}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case ColorWild:
		return "Wild"
	default:
		return fmt.Sprintf("invalid_color(%d)", int(c))
	}
}

// ParseColor matches a concrete color name case-insensitively.
// ColorWild is not parseable; wild cards are matched by value alone.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red":
		return Red, true
	case "yellow":
		return Yellow, true
	case "green":
		return Green, true
	case "blue":
		return Blue, true
	}
	return ColorWild, false
}

// Value is a card's rank: 0-9 numeric, then the special ranks.
type Value int

const (
	Skip Value = 10 + iota
	Reverse
	Draw2
	Wild
	Draw4
)

func (v Value) String() string {
	if 0 <= v && v <= 9 {
		return fmt.Sprintf("%d", int(v))
	}
	switch v {
	case Skip:
		return "Skip"
	case Reverse:
		return "Reverse"
	case Draw2:
		return "Draw2"
	case Wild:
		return "Wild"
	case Draw4:
		return "Draw4"
	default:
		return fmt.Sprintf("invalid_value(%d)", int(v))
	}
}

// ParseValue matches a rank rendering case-insensitively.
func ParseValue(s string) (Value, bool) {
	switch strings.ToLower(s) {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return Value(s[0] - '0'), true
	case "skip":
		return Skip, true
	case "reverse":
		return Reverse, true
	case "draw2":
		return Draw2, true
	case "wild":
		return Wild, true
	case "draw4":
		return Draw4, true
	}
	return 0, false
}

// Card is a fungible (color, value) pair. Duplicates are expected; cards
// carry no identity beyond their face.
type Card struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

// IsWild reports whether the card is color-less (Wild or Draw4).
func (c Card) IsWild() bool {
	return c.Color == ColorWild
}

func (c Card) String() string {
	if c.IsWild() {
		return c.Value.String()
	}
	return c.Color.String() + " " + c.Value.String()
}

// FullSize is the fixed composition size: per color one 0, two each of 1-9,
// two Skip, two Reverse, two Draw2 (25 x 4), plus 4 Wild and 4 Draw4.
const FullSize = 108

// NewFullDeck returns the complete 108-card composition in a fixed order.
func NewFullDeck() []Card {
	cards := make([]Card, 0, FullSize)
	for _, color := range Precedence {
		cards = append(cards, Card{Color: color, Value: 0})
		for v := Value(1); v <= 9; v++ {
			cards = append(cards, Card{Color: color, Value: v}, Card{Color: color, Value: v})
		}
		for _, v := range []Value{Skip, Reverse, Draw2} {
			cards = append(cards, Card{Color: color, Value: v}, Card{Color: color, Value: v})
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, Card{Color: ColorWild, Value: Wild})
		cards = append(cards, Card{Color: ColorWild, Value: Draw4})
	}
	return cards
}
