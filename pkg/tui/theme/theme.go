package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabsTheme
	Panel  PanelTheme
	Footer FooterTheme
	Form   FormTheme
}

// TabsTheme styles the view switcher along the top.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Faint lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Badge  lipgloss.Style
	Notice lipgloss.Style
	Error  lipgloss.Style
}

// FormTheme styles the leave request form.
type FormTheme struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Problem lipgloss.Style
	Hint    lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Active: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true).
				Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Faint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Badge: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true),
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Form: FormTheme{
			Label:   lipgloss.NewStyle().Bold(true),
			Value:   lipgloss.NewStyle(),
			Problem: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
