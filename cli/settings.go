package cli

import (
	"fmt"
	"strconv"
	"strings"

	"capnproto.org/go/capnp/v3"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"pfeifer.dev/pccd/cereal"
	"pfeifer.dev/pccd/cereal/custom"
	"pfeifer.dev/pccd/pcc"
	"pfeifer.dev/pccd/utils"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
	None
)

type settingsState int

const (
	showSettingsMenu settingsState = iota
	settingsExit
	settingsInput
	settingsSend
)

type settingsItem struct {
	title, desc string
	state       settingsState
	MessageType custom.PccCommandType
	Type        SettingType
}

func (i settingsItem) Title() string       { return i.title }
func (i settingsItem) Description() string { return i.desc }
func (i settingsItem) FilterValue() string { return i.title }

type settingsModel struct {
	list         list.Model
	state        settingsState
	textInput    textinput.Model
	selectedItem settingsItem
	prompt       string
	err          error
}

func (m settingsModel) Update(msg tea.Msg, mm *uiModel) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && m.state == showSettingsMenu && m.list.FilterState() != list.Filtering {
			it := m.list.SelectedItem().(settingsItem)
			m.selectedItem = it
			m.err = nil
			switch it.state {
			case settingsExit:
				mm.state = showMenu
			case settingsInput:
				m.state = settingsInput
				m.prompt = it.Title()
				m.textInput.SetValue("")
				return m, m.textInput.Focus()
			case settingsSend:
				m.err = sendCommand(mm.pub, it.MessageType, None, "")
			}
			return m, nil
		}
		if m.state == settingsInput {
			switch msg.Type {
			case tea.KeyEsc:
				m.state = showSettingsMenu
				m.textInput.Blur()
				return m, nil
			case tea.KeyEnter:
				m.state = showSettingsMenu
				m.textInput.Blur()
				m.err = sendCommand(mm.pub, m.selectedItem.MessageType, m.selectedItem.Type, m.textInput.Value())
				return m, nil
			}
			var cmd tea.Cmd
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case TickMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m settingsModel) View() string {
	switch m.state {
	case settingsInput:
		return docStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.prompt,
			m.textInput.View(),
			"(esc to cancel)",
		) + "\n")
	default:
		view := m.list.View()
		if m.err != nil {
			view += "\n" + alertStyle.Render(m.err.Error())
		}
		return docStyle.Render(view)
	}
}

type commandSender interface {
	Send(*capnp.Message) error
}

// buildCommand parses the raw input for a setting of the given type.
func buildCommand(cmd custom.PccCommand, typ custom.PccCommandType, settingType SettingType, raw string) error {
	cmd.SetType(typ)
	raw = strings.TrimSpace(raw)
	switch settingType {
	case String:
		return errors.Wrap(cmd.SetStr(raw), "could not set string")
	case Bool:
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.Wrapf(err, "%q is not true or false", raw)
		}
		cmd.SetBool(val)
	case Float:
		val, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return errors.Wrapf(err, "%q is not a number", raw)
		}
		cmd.SetFloat(float32(val))
	}
	return nil
}

func sendCommand(pub commandSender, typ custom.PccCommandType, settingType SettingType, raw string) error {
	msg, cmd := cereal.NewMessage(cereal.PccCommandCreator)
	if err := buildCommand(cmd, typ, settingType, raw); err != nil {
		return err
	}
	err := pub.Send(msg)
	utils.Loge(err, "command", typ.String())
	return err
}

func getSettingsModel() settingsModel {
	items := []list.Item{
		settingsItem{
			title:       "Mode",
			desc:        fmt.Sprintf("Control path used while engaged (%s)", strings.Join(pcc.Labels(), ", ")),
			MessageType: custom.PccCommandType_setMode,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Experimental Follow Mode",
			desc:        "Allows the FOLLOW mode to be selected, applied on the next start",
			MessageType: custom.PccCommandType_setExperimentalFollowMode,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Force Pedal Over Cruise",
			desc:        "Allow engagement while the stock cruise control is on",
			MessageType: custom.PccCommandType_setForcePedalOverCC,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Use Radar",
			desc:        "Lead distances come from a dedicated radar instead of vision",
			MessageType: custom.PccCommandType_setUseRadar,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Trim",
			desc:        "Vehicle trim used for the acceleration tables (S, SP, SPD)",
			MessageType: custom.PccCommandType_setTrim,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Follow Time",
			desc:        "Default follow time in seconds when the car does not report one",
			MessageType: custom.PccCommandType_setFollowTime,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Speed Limit Offset",
			desc:        "Offset in kph added to the speed limit when it becomes the target",
			MessageType: custom.PccCommandType_setSpeedLimitOffset,
			Type:        Float,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Feature Button",
			desc:        "Turn pedal cruise control on or off",
			MessageType: custom.PccCommandType_setButton,
			Type:        Bool,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Set Log Level",
			desc:        "Modify how verbose logging will be (debug, info, warn, error)",
			MessageType: custom.PccCommandType_setLogLevel,
			Type:        String,
			state:       settingsInput,
		},
		settingsItem{
			title:       "Save Settings",
			desc:        "Persists any updates to the settings across reboots",
			MessageType: custom.PccCommandType_saveSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Reload Settings",
			desc:        "Discard unsaved changes and reload the stored settings",
			MessageType: custom.PccCommandType_reloadSettings,
			state:       settingsSend,
		},
		settingsItem{
			title:       "Load Default Settings",
			desc:        "Reset every setting to its default, save to keep them",
			MessageType: custom.PccCommandType_loadDefaultSettings,
			state:       settingsSend,
		},
		settingsItem{
			title: "Return to Main Menu",
			desc:  "Exit settings configuration and return to the initial actions menu",
			state: settingsExit,
		},
	}

	listDelegate := list.NewDefaultDelegate()
	ti := textinput.New()
	ti.CharLimit = 32
	m := settingsModel{list: list.New(items, listDelegate, 0, 0), textInput: ti}
	m.list.Title = "pccd Settings"
	return m
}
