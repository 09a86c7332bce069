package report

import "github.com/charmbracelet/lipgloss"

const bannerText = ` _       _           _    _ _
| |_   _| |__  _ __ | | _(_) |_
| | | | | '_ \| '_ \| |/ / | __|
| | |_| | | | | | | |   <| | |_
|_|\__,_|_| |_|_| |_|_|\_\_|\__|`

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

// Banner returns the tool banner. Color is dropped when noColor is set.
func Banner(noColor bool) string {
	if noColor {
		return bannerText
	}
	return bannerStyle.Render(bannerText)
}
