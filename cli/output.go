package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/pcc"
)

var (
	enabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type outputModel struct {
	output    custom.PccState
	valid     bool
	lastAlert string
}

func (m outputModel) Update(msg tea.Msg, mm *uiModel) (outputModel, tea.Cmd) {
	m.valid = mm.validData
	m.output = mm.pccState
	m.lastAlert = mm.lastAlert
	return m, nil
}

func (m outputModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for pccState...\n\n(esc to return)")
	}
	return docStyle.Render(formatState(m.output, m.lastAlert) + "\n\n(esc to return)")
}

func formatState(s custom.PccState, lastAlert string) string {
	status := pcc.Status(s.Status()).String()
	if s.Enabled() {
		status = enabledStyle.Render(status)
	} else {
		status = disabledStyle.Render(status)
	}
	alert := ""
	if lastAlert != "" {
		alert = "\nlast alert: " + alertStyle.Render(lastAlert)
	}
	return fmt.Sprintf(
		"status: %s\navailable: %t\nrule: %s\ntarget speed: %.1f kph\npedal: %.2f (enabled %t, idx %d)\naccel: %.2f .. %.2f\njerk: %.2f .. %.2f\nbrake floor: %.2f%s",
		status,
		s.Available(),
		pcc.Rule(s.Rule()).String(),
		s.TargetSpeedKph(),
		s.Pedal(),
		s.PedalEnabled(),
		s.PedalIndex(),
		s.AccelMin(),
		s.AccelMax(),
		s.JerkMin(),
		s.JerkMax(),
		s.BrakeFloor(),
		alert,
	)
}
