package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pfeifer.dev/pccd/cereal"
	"pfeifer.dev/pccd/cereal/custom"
	ms "pfeifer.dev/pccd/settings"
)

type mainState int

const (
	showMenu mainState = iota
	showSettings
	showOutput
	showPedal
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type TickMsg time.Time

func tickEvery() tea.Cmd {
	return tea.Every(ms.LOOP_DELAY, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type uiModel struct {
	list      list.Model
	state     mainState
	settings  settingsModel
	output    outputModel
	pedal     pedalModel
	pub       *cereal.Publisher[custom.PccCommand]
	sub       *cereal.Subscriber[custom.PccState]
	pccState  custom.PccState
	validData bool
	lastAlert string
}

type item struct {
	title, desc string
	state       mainState
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func initialModel() uiModel {
	items := []list.Item{
		item{title: "Settings", desc: "Modify settings of an active instance of pccd", state: showSettings},
		item{title: "Watch", desc: "Watch the live controller state", state: showOutput},
		item{title: "Pedal", desc: "Watch the pedal command", state: showPedal},
	}

	listDelegate := list.NewDefaultDelegate()
	pub := cereal.NewPublisher(cereal.PCC_COMMAND, cereal.PccCommandCreator)
	sub := cereal.NewSubscriber(cereal.PCC_STATE, cereal.PccStateReader, true)
	m := uiModel{
		list:     list.New(items, listDelegate, 0, 0),
		settings: getSettingsModel(),
		pedal:    getPedalModel(),
		pub:      &pub,
		sub:      &sub,
	}
	m.list.Title = "pccd Actions"
	return m
}

func (m uiModel) Init() tea.Cmd {
	return tickEvery()
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc && m.state != showMenu && m.settings.state != settingsInput {
			m.state = showMenu
			return m, nil
		}
		if msg.Type == tea.KeyEnter && m.state == showMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(item)
			m.state = it.state
			return m, nil
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.settings, _ = m.settings.Update(msg, &m)
		m.pedal, _ = m.pedal.Update(msg, &m)
	case TickMsg:
		state, success := m.sub.Read()
		if success {
			m.pccState = state
			m.validData = true
			if alert, err := state.Alert(); err == nil && alert != "" {
				m.lastAlert = alert
			}
		}
		m.output, _ = m.output.Update(msg, &m)
		var cmd tea.Cmd
		m.pedal, cmd = m.pedal.Update(msg, &m)
		return m, tea.Batch(tickEvery(), cmd)
	}

	var cmd tea.Cmd
	switch m.state {
	case showSettings:
		m.settings, cmd = m.settings.Update(msg, &m)
	case showOutput:
		m.output, cmd = m.output.Update(msg, &m)
	case showPedal:
		m.pedal, cmd = m.pedal.Update(msg, &m)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m uiModel) View() string {
	switch m.state {
	case showSettings:
		return m.settings.View()
	case showOutput:
		return m.output.View()
	case showPedal:
		return m.pedal.View()
	}
	return docStyle.Render(m.list.View())
}

func interactive() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
