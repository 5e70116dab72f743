package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxPedal = 100.0

type pedalModel struct {
	bar     progress.Model
	value   float64
	enabled bool
	valid   bool
}

func getPedalModel() pedalModel {
	return pedalModel{bar: progress.New(progress.WithDefaultGradient())}
}

func (m pedalModel) Update(msg tea.Msg, mm *uiModel) (pedalModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.bar.Width = msg.Width - h
	case TickMsg:
		if !mm.validData {
			return m, nil
		}
		m.valid = true
		m.value = float64(mm.pccState.Pedal())
		m.enabled = mm.pccState.PedalEnabled()
		return m, m.bar.SetPercent(m.value / maxPedal)
	case progress.FrameMsg:
		model, cmd := m.bar.Update(msg)
		m.bar = model.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m pedalModel) View() string {
	if !m.valid {
		return docStyle.Render("waiting for pccState...\n\n(esc to return)")
	}
	label := fmt.Sprintf("pedal %.1f%%", m.value)
	if !m.enabled {
		label += " " + disabledStyle.Render("(disabled)")
	}
	return docStyle.Render(label + "\n\n" + m.bar.View() + "\n\n(esc to return)")
}
