package render

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	BidColor     = lipgloss.Color("#10B981") // Green
	OfferColor   = lipgloss.Color("#EF4444") // Red
	TradeColor   = lipgloss.Color("#F59E0B") // Amber
	WarningColor = lipgloss.Color("#FBBF24")
	MutedColor   = lipgloss.Color("#6B7280")
)

var (
	BidStyle = lipgloss.NewStyle().
			Foreground(BidColor)

	OfferStyle = lipgloss.NewStyle().
			Foreground(OfferColor)

	TradeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TradeColor)

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)
