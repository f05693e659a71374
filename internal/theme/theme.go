package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	ColumnHeader          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Input                 *lipgloss.Style
	InputPrompt           *lipgloss.Style
	InputPlaceholder      *lipgloss.Style
	Cursor                *lipgloss.Style
	PanelTitle            *lipgloss.Style
	PanelBorder           *lipgloss.Style
	FocusedPanelBorder    *lipgloss.Style
	Pending               *lipgloss.Style
	Unassigned            *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ColumnHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	InputPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	InputPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	FocusedPanelBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Pending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Unassigned: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
}

// personColors are the ANSI colours handed out to people in index order.
var personColors = []lipgloss.Color{
	lipgloss.Color("4"),  // blue
	lipgloss.Color("1"),  // red
	lipgloss.Color("14"), // light cyan
	lipgloss.Color("2"),  // green
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("13"), // light magenta
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("10"), // light green
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("11"), // light yellow
	lipgloss.Color("7"),  // gray
	lipgloss.Color("12"), // light blue
	lipgloss.Color("9"),  // light red
	lipgloss.Color("8"),  // dark gray
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// PersonColor returns the colour for person and false once the palette is
// exhausted.
func PersonColor(person int) (lipgloss.Color, bool) {
	if person < 0 || person >= len(personColors) {
		return "", false
	}
	return personColors[person], true
}

// PersonChip is the style for owner chips and people markers.
func PersonChip(person int) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	if c, ok := PersonColor(person); ok {
		return style.Background(c)
	}
	return style.Reverse(true)
}

// PersonMarker colours the foreground only, for the people list.
func PersonMarker(person int) lipgloss.Style {
	if c, ok := PersonColor(person); ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
