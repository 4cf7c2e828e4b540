package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/hypergrid/hypergrid/internal/config"
)

// TickerMsg is the per-frame tick driving animations.
type TickerMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration from the
// file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Init starts the frame ticker.
func (d *Desktop) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd schedules the next frame at the animation rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd schedules the next frame at the idle rate, used while
// nothing is animating. The tick keeps running so sysinfo stays fresh
// and a structural change is picked up promptly.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles all incoming messages.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		if d.driver.Armed() {
			d.driver.Tick()
		}
		d.updateSysinfo()

		if d.driver.Armed() {
			return d, TickCmd()
		}
		return d, IdleTickCmd()

	case ConfigReloadedMsg:
		d.ApplyConfig(msg.Config)
		return d, nil

	case tea.KeyPressMsg:
		return d.handleKey(msg)

	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		d.driver.SetBounds(d.workspaceBounds())
		return d, nil
	}

	return d, nil
}

func (d *Desktop) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return d, tea.Quit

	case "n":
		d.OpenWindow()

	case "x":
		d.CloseFocused()

	case "tab":
		d.FocusNext(1)

	case "shift+tab":
		d.FocusNext(-1)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		d.SwitchWorkspace(int(key[0] - '0'))

	case "t":
		d.LayoutCommand("togglesplit")

	case "s":
		d.LayoutCommand("swapnext")

	case "p":
		d.LayoutCommand("pseudo")

	case "?":
		d.ShowHelp = !d.ShowHelp

	case "esc":
		d.ShowHelp = false
	}

	return d, nil
}
