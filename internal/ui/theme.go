package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/composer"
)

// IdentityColors are the two colors tied to a family member.
type IdentityColors struct {
	Accent string // card border and accent bar
	Note   string // sticky note fill in the grid layout
}

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string // composer panel, buttons
	Scrim      string // board backdrop

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text   string
	Muted  string
	Faint  string
	Accent string
	Danger string

	// Controls
	DraftField string
	AddButton  string
	PlusButton string

	Identities  map[board.Identity]IdentityColors
	DefaultNote string
	Tints       map[composer.Tint]string
	Strip       [2]string // alternating note fills in the strip layout
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Screen: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 4),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Screen     lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	MutedText  lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	DangerText lipgloss.Style
	Status     lipgloss.Style
	Panel      lipgloss.Style
}

// Button returns the style for a bordered control, highlighted when focused.
func (t Theme) Button(fill string, focused bool) lipgloss.Style {
	border := t.Border
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 2)
	if fill != "" {
		style = style.Background(lipgloss.Color(fill)).Foreground(lipgloss.Color(t.OnFill()))
	}
	if focused {
		border = t.BorderFocus
		style = style.Border(lipgloss.ThickBorder())
	}
	return style.BorderForeground(lipgloss.Color(border))
}

// Pill returns the style for a single-line control. Unfilled pills sit on the
// scrim color.
func (t Theme) Pill(fill string, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	switch {
	case focused:
		return style.
			Background(lipgloss.Color(t.BorderFocus)).
			Foreground(lipgloss.Color(t.OnFill())).
			Bold(true)
	case fill != "":
		return style.
			Background(lipgloss.Color(fill)).
			Foreground(lipgloss.Color(t.OnFill()))
	default:
		return style.
			Background(lipgloss.Color(t.Scrim)).
			Foreground(lipgloss.Color(t.Text))
	}
}

// OnFill is the text color drawn on pastel fills.
func (t Theme) OnFill() string {
	return "#000000"
}

// IdentityColor returns the colors for id, falling back to the accent.
func (t Theme) IdentityColor(id board.Identity) IdentityColors {
	if c, ok := t.Identities[id]; ok {
		return c
	}
	return IdentityColors{Accent: t.Accent, Note: t.DefaultNote}
}

// AuthorNoteColor returns the grid-layout fill for a note by author.
func (t Theme) AuthorNoteColor(author string) string {
	if id, ok := board.IdentityByLabel(author); ok {
		return t.IdentityColor(id).Note
	}
	return t.DefaultNote
}

// StripNoteColor returns the strip-layout fill for the note at index.
func (t Theme) StripNoteColor(index int) string {
	return t.Strip[index%2]
}

// TintColor returns the fill for a canned note button.
func (t Theme) TintColor(tint composer.Tint) string {
	if c, ok := t.Tints[tint]; ok {
		return c
	}
	return t.Tints[composer.TintDefault]
}

// Theme definitions

var themes = map[string]Theme{
	"Chalk": chalkTheme(),
	"Slate": slateTheme(),
}

var themeOrder = []string{"Chalk", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return chalkTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func pastelTints() map[composer.Tint]string {
	return map[composer.Tint]string{
		composer.TintDefault: "#FFF7E0",
		composer.TintPurple:  "#FAE6FF",
		composer.TintOrange:  "#FFF2D9",
		composer.TintRed:     "#FFE0E0",
	}
}

func familyColors() map[board.Identity]IdentityColors {
	return map[board.Identity]IdentityColors{
		board.Dad: {Accent: "#00C7BE", Note: "#E9F9E5"}, // mint
		board.Mom: {Accent: "#FF2D55", Note: "#FFD7EE"}, // pink
		board.Kid: {Accent: "#007AFF", Note: "#CEEEF8"}, // blue
	}
}

func chalkTheme() Theme {
	// Light board: white surfaces, black outlines, yellow focus ring.
	return Theme{
		Name: "Chalk",

		Background: "#EDEDED",
		Surface:    "#FFFFFF",
		Scrim:      "#FFFFFF",

		Border:      "#000000",
		BorderFocus: "#FFCC00",

		Text:   "#000000",
		Muted:  "#6B6B6B",
		Faint:  "#9A9A9A",
		Accent: "#007AFF",
		Danger: "#FF3B30",

		DraftField: "#D0C3F1",
		AddButton:  "#FEF1AB",
		PlusButton: "#007AFF",

		Identities:  familyColors(),
		DefaultNote: "#FFEB70",
		Tints:       pastelTints(),
		Strip:       [2]string{"#FFF59D", "#B3E5FC"},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate palette: https://tailwindcss.com/docs/colors
	// Note fills stay pastel so black note text remains readable.
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		Scrim:      "#1e293b", // slate-800

		Border:      "#475569", // slate-600
		BorderFocus: "#facc15", // yellow-400

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Faint:  "#64748b", // slate-500
		Accent: "#38bdf8", // sky-400
		Danger: "#ef4444", // red-500

		DraftField: "#c4b5fd", // violet-300
		AddButton:  "#fde68a", // amber-200
		PlusButton: "#0284c7", // sky-600

		Identities:  familyColors(),
		DefaultNote: "#fef08a", // yellow-200
		Tints:       pastelTints(),
		Strip:       [2]string{"#fef08a", "#bae6fd"},
	}
}
