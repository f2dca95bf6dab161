// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 The OpenPMC Authors

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openpmc/pmbusmon/pkg/pmbus"
)

var monitorInterval int

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live telemetry and status view",
	Long: `Poll the device's telemetry and status registers continuously and
show them in a live terminal view. Press 'q' to quit.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().IntVar(&monitorInterval, "interval", 1, "Poll interval in seconds")
}

// Messages
type monitorTickMsg time.Time
type monitorPollMsg struct {
	rows   []table.Row
	status pmbus.StatusWord
	err    error
}

type monitorModel struct {
	adapter  *pmbus.Adapter
	addr     uint8
	connInfo string
	interval time.Duration

	mode    pmbus.VoutMode
	hasMode bool

	tbl        table.Model
	status     pmbus.StatusWord
	hasStatus  bool
	lastPoll   time.Time
	lastErr    error
	pollCount  int
	errCount   int
	width      int
	height     int
	quitting   bool
	pollActive bool
}

func initialMonitorModel(adapter *pmbus.Adapter, addr uint8, connInfo string, mode pmbus.VoutMode, hasMode bool) monitorModel {
	columns := []table.Column{
		{Title: "Register", Width: 22},
		{Title: "Value", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithHeight(len(telemetryCommands)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return monitorModel{
		adapter:  adapter,
		addr:     addr,
		connInfo: connInfo,
		interval: time.Duration(monitorInterval) * time.Second,
		mode:     mode,
		hasMode:  hasMode,
		tbl:      t,
		width:    80,
		height:   24,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(
		m.pollCmd(),
		monitorTickCmd(m.interval),
		tea.EnterAltScreen,
	)
}

func monitorTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return monitorTickMsg(t)
	})
}

// pollCmd reads one round of telemetry and STATUS_WORD off the Update
// loop. The poll budget is the tick interval so a stuck bus cannot pile
// up transactions.
func (m monitorModel) pollCmd() tea.Cmd {
	adapter, addr := m.adapter, m.addr
	mode, hasMode := m.mode, m.hasMode
	budget := m.interval

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), budget)
		defer cancel()

		var rows []table.Row
		for _, code := range telemetryCommands {
			info, _ := pmbus.Lookup(code)

			var v float64
			var err error
			switch info.Codec {
			case pmbus.CodecVoltage:
				if !hasMode {
					continue
				}
				v, err = adapter.ReadValueWith(ctx, addr, code, mode)
			default:
				v, err = adapter.ReadValue(ctx, addr, code)
			}
			if err != nil {
				if ctx.Err() != nil {
					return monitorPollMsg{err: ctx.Err()}
				}
				continue
			}
			rows = append(rows, table.Row{code.Name(), pmbus.FormatValue(code, v)})
		}

		status, err := adapter.GetStatusWord(ctx, addr)
		if err != nil {
			return monitorPollMsg{rows: rows, err: err}
		}
		return monitorPollMsg{rows: rows, status: status}
	}
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case monitorTickMsg:
		var cmds []tea.Cmd
		if !m.pollActive {
			m.pollActive = true
			cmds = append(cmds, m.pollCmd())
		}
		cmds = append(cmds, monitorTickCmd(m.interval))
		return m, tea.Batch(cmds...)

	case monitorPollMsg:
		m.pollActive = false
		m.lastPoll = time.Now()
		m.pollCount++
		m.lastErr = msg.err
		if msg.err != nil {
			m.errCount++
		}
		if msg.rows != nil {
			m.tbl.SetRows(msg.rows)
		}
		if msg.err == nil {
			m.status = msg.status
			m.hasStatus = true
		}
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m monitorModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	okStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	faultStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(titleStyle.Render("PMBUSMON - LIVE MONITOR"))
	s.WriteString("\n")
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Device 0x%02X | every %s | Press 'q' to quit",
		m.connInfo, m.addr, m.interval)))
	s.WriteString("\n")
	if m.hasMode {
		s.WriteString(headerStyle.Render(fmt.Sprintf("VOUT_MODE: %s", m.mode)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(boxStyle.Render(m.tbl.View()))
	s.WriteString("\n\n")

	if m.hasStatus {
		if uint16(m.status) == 0 {
			s.WriteString(okStyle.Render("STATUS_WORD: no faults"))
		} else {
			s.WriteString(faultStyle.Render(fmt.Sprintf("STATUS_WORD 0x%04X: %s", uint16(m.status), m.status)))
		}
		s.WriteString("\n")
	}

	footer := fmt.Sprintf("polls: %d  errors: %d", m.pollCount, m.errCount)
	if !m.lastPoll.IsZero() {
		footer += fmt.Sprintf("  last: %s", m.lastPoll.Format("15:04:05"))
	}
	if m.lastErr != nil {
		footer += fmt.Sprintf("  last error: %v", m.lastErr)
	}
	s.WriteString(headerStyle.Render(footer))
	s.WriteString("\n")

	return s.String()
}

func runMonitor(cmd *cobra.Command, args []string) error {
	adapter, addr, conn, connInfo, err := openTarget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer conn.Close()

	// Read VOUT_MODE once up front; it does not change while monitoring.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	mode, modeErr := adapter.GetVoutMode(ctx, addr)
	cancel()

	model := initialMonitorModel(adapter, addr, connInfo, mode, modeErr == nil)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("monitor UI: %w", err)
	}
	return nil
}
