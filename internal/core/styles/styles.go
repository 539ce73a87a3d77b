// Package styles provides shared lipgloss styles and theme palettes for the
// CLI and TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Shared styles, rebuilt whenever the theme changes.
var (
	TitleStyle       lipgloss.Style
	SubtitleStyle    lipgloss.Style
	TextMutedStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style

	BlockBorderStyle  lipgloss.Style
	BlockEditingStyle lipgloss.Style
	BlockTitleStyle   lipgloss.Style
	BlockTagStyle     lipgloss.Style

	PickerStyle         lipgloss.Style
	PickerItemStyle     lipgloss.Style
	PickerSelectedStyle lipgloss.Style
	PickerHintStyle     lipgloss.Style

	DeleteArmedStyle lipgloss.Style
	CopiedStyle      lipgloss.Style
	ToastStyle       lipgloss.Style
	HelpStyle        lipgloss.Style
	CursorStyle      lipgloss.Style

	LinkStyle   lipgloss.Style
	BoldStyle   lipgloss.Style
	ItalicStyle lipgloss.Style

	CountdownStyle      lipgloss.Style
	TaskDoneStyle       lipgloss.Style
	ErrorMessageStyle   lipgloss.Style
	SuccessMessageStyle lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme applies the palette and rebuilds all shared styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Muted).Italic(true)

	BlockBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	BlockEditingStyle = BlockBorderStyle.BorderForeground(p.Primary)
	BlockTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.Foreground)
	BlockTagStyle = lipgloss.NewStyle().Foreground(p.Muted)

	PickerStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	PickerItemStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	PickerSelectedStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	PickerHintStyle = lipgloss.NewStyle().Foreground(p.Muted)

	DeleteArmedStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	CopiedStyle = lipgloss.NewStyle().Foreground(p.Success)
	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	LinkStyle = lipgloss.NewStyle().Foreground(p.Secondary).Underline(true)
	BoldStyle = lipgloss.NewStyle().Bold(true)
	ItalicStyle = lipgloss.NewStyle().Italic(true)

	CountdownStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TaskDoneStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	ErrorMessageStyle = lipgloss.NewStyle().Foreground(p.Error)
	SuccessMessageStyle = lipgloss.NewStyle().Foreground(p.Success)
}
