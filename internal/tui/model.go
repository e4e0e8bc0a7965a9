// Package tui - интерактивный экран с двумя виджетами: Encode/Decode и QR.
// Всё состояние виджетов живет в viewmodel.Store, модель только
// переводит нажатия клавиш в действия и рисует результат.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webtools/internal/domain/models"
	"webtools/internal/viewmodel"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// clipboardWriteAll подменяется в тестах
var clipboardWriteAll = clipboard.WriteAll

type pane int

const (
	paneEncoder pane = iota
	paneQR
)

const previewLimit = 400

type (
	generateDoneMsg struct{}
	scanDoneMsg     struct{}
)

type Model struct {
	ctx      context.Context
	store    *viewmodel.Store
	pane     pane
	input    textinput.Model
	scanPath string
	saveDir  string
	status   string
	styles   Styles
	width    int
}

func New(ctx context.Context, store *viewmodel.Store, saveDir string) Model {
	ti := textinput.New()
	ti.Placeholder = "Type text and press enter..."
	ti.Focus()

	return Model{
		ctx:     ctx,
		store:   store,
		input:   ti,
		saveDir: saveDir,
		styles:  DefaultStyles(),
		width:   80,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil
	case generateDoneMsg, scanDoneMsg:
		return m, nil
	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.syncInput()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit, true
	case "tab":
		m.switchPane()
		return m, nil, true
	}

	if m.pane == paneEncoder {
		return m.handleEncoderKey(msg)
	}
	return m.handleQRKey(msg)
}

func (m Model) handleEncoderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	st := m.store.Encoder()

	switch msg.String() {
	case "enter":
		m.store.DispatchEncoder(viewmodel.SubmitEncode{})
	case "ctrl+e":
		mode := models.ModeDecode
		if st.Mode == models.ModeDecode {
			mode = models.ModeEncode
		}
		m.store.DispatchEncoder(viewmodel.SetMode{Mode: mode})
	case "ctrl+l":
		alg := models.AlgorithmLegacy
		if st.Algorithm == models.AlgorithmLegacy {
			alg = models.AlgorithmModern
		}
		m.store.DispatchEncoder(viewmodel.SetAlgorithm{Algorithm: alg})
	case "ctrl+y":
		m.copy(st.Output)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m Model) handleQRKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	st := m.store.QR()

	switch msg.String() {
	case "ctrl+t":
		tab := viewmodel.TabScan
		if st.Tab == viewmodel.TabScan {
			tab = viewmodel.TabGenerate
		}
		m.store.DispatchQR(viewmodel.SwitchTab{Tab: tab})
		m.status = ""
		m.loadInput()
		return m, nil, true
	}

	if st.Tab == viewmodel.TabScan {
		if msg.String() != "enter" || strings.TrimSpace(m.scanPath) == "" {
			return m, nil, false
		}
		path := strings.TrimSpace(m.scanPath)
		seq := m.store.SelectScanFile(filepath.Base(path))
		return m, scanCmd(m.ctx, m.store, seq, path), true
	}

	switch msg.String() {
	case "enter":
		// пока идет генерация, повторный запуск игнорируем
		if st.Generating {
			return m, nil, true
		}
		return m, generateCmd(m.ctx, m.store), true
	case "ctrl+f":
		opts := st.Options
		opts.OutputFormat = (opts.OutputFormat + 1) % 3
		m.store.DispatchQR(viewmodel.SetQROptions{Options: opts})
	case "ctrl+r":
		opts := st.Options
		opts.ErrorCorrectionLevel = (opts.ErrorCorrectionLevel + 1) % 4
		m.store.DispatchQR(viewmodel.SetQROptions{Options: opts})
	case "ctrl+y":
		m.copy(st.CopyText())
	case "ctrl+s":
		m.save(st)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *Model) switchPane() {
	if m.pane == paneEncoder {
		m.pane = paneQR
	} else {
		m.pane = paneEncoder
	}
	m.status = ""
	m.loadInput()
}

// loadInput подставляет в поле ввода значение текущего виджета
func (m *Model) loadInput() {
	switch {
	case m.pane == paneEncoder:
		m.input.SetValue(m.store.Encoder().Input)
	case m.store.QR().Tab == viewmodel.TabScan:
		m.scanPath = ""
		m.input.SetValue("")
	default:
		m.input.SetValue(m.store.QR().Input)
	}
}

// syncInput отправляет изменения поля ввода в store
func (m *Model) syncInput() {
	value := m.input.Value()
	switch {
	case m.pane == paneEncoder:
		if value != m.store.Encoder().Input {
			m.store.DispatchEncoder(viewmodel.SetInput{Text: value})
		}
	case m.store.QR().Tab == viewmodel.TabScan:
		m.scanPath = value
	default:
		if value != m.store.QR().Input {
			m.store.DispatchQR(viewmodel.SetQRInput{Text: value})
		}
	}
}

func (m *Model) copy(text string) {
	if text == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := clipboardWriteAll(text); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.status = "Copied to clipboard"
}

func (m *Model) save(st viewmodel.QRState) {
	file, err := st.Download()
	if err != nil {
		m.status = "Generate a QR code first"
		return
	}

	path := filepath.Join(m.saveDir, file.Filename)
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Saved %s (%s, %d bytes)", path, file.MIMEType, len(file.Data))
}

func generateCmd(ctx context.Context, store *viewmodel.Store) tea.Cmd {
	return func() tea.Msg {
		store.Generate(ctx)
		return generateDoneMsg{}
	}
}

func scanCmd(ctx context.Context, store *viewmodel.Store, seq uint64, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			store.DispatchQR(viewmodel.ScanFailed{Seq: seq, Message: models.ErrReadFile.Error()})
			return scanDoneMsg{}
		}
		defer f.Close()

		store.RunScan(ctx, seq, f)
		return scanDoneMsg{}
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("webtools"))
	sb.WriteString("  ")
	sb.WriteString(m.renderTabs([]string{"Encode/Decode", "QR Code"}, int(m.pane)))
	sb.WriteString("\n\n")

	if m.pane == paneEncoder {
		sb.WriteString(m.viewEncoder())
	} else {
		sb.WriteString(m.viewQR())
	}

	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Status.Render(m.status))
	}
	return sb.String()
}

func (m Model) renderTabs(names []string, active int) string {
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == active {
			tabs[i] = m.styles.ActiveTab.Render(name)
		} else {
			tabs[i] = m.styles.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewEncoder() string {
	st := m.store.Encoder()

	var sb strings.Builder
	sb.WriteString(m.styles.Label.Render(fmt.Sprintf("mode: %s  algorithm: %s", st.Mode, st.Algorithm)))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	switch {
	case st.Error != "":
		sb.WriteString(m.styles.Error.Render(st.Error))
	case st.Output != "":
		sb.WriteString(m.styles.Output.Width(m.width - 4).Render(st.Output))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("enter: run • ctrl+e: encode/decode • ctrl+l: modern/legacy • ctrl+y: copy • tab: QR • esc: quit"))
	return sb.String()
}

func (m Model) viewQR() string {
	st := m.store.QR()

	var sb strings.Builder
	sb.WriteString(m.renderTabs([]string{"Generate", "Scan"}, int(st.Tab)))
	sb.WriteString("\n")

	if st.Tab == viewmodel.TabScan {
		sb.WriteString(m.styles.Label.Render("image file path:"))
		sb.WriteString("\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")

		switch st.Scan.Phase {
		case viewmodel.PhaseFileSelected:
			sb.WriteString(m.styles.Label.Render("Scanning " + st.Scan.FileName + "..."))
		case viewmodel.PhaseResult:
			sb.WriteString(m.styles.Output.Render(st.Scan.Result))
		case viewmodel.PhaseError:
			sb.WriteString(m.styles.Error.Render(st.Scan.Error))
		}

		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("enter: scan • ctrl+t: generate • tab: encoder • esc: quit"))
		return sb.String()
	}

	o := st.Options
	sb.WriteString(m.styles.Label.Render(fmt.Sprintf("format: %s  level: %s  size: %d  color: %s on %s",
		o.OutputFormat, o.ErrorCorrectionLevel, o.Size, o.Color, o.BackgroundColor)))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	switch {
	case st.Generating:
		sb.WriteString(m.styles.Label.Render("Generating..."))
	case st.Error != "":
		sb.WriteString(m.styles.Error.Render(st.Error))
	case st.HasArtifact():
		sb.WriteString(m.styles.Output.Render(preview(st)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("enter: generate • ctrl+f: format • ctrl+r: level • ctrl+y: copy • ctrl+s: save • ctrl+t: scan • tab: encoder"))
	return sb.String()
}

func preview(st viewmodel.QRState) string {
	switch st.Generated.Options.OutputFormat {
	case models.FormatUTF8:
		return st.Artifact
	case models.FormatDataURL:
		return fmt.Sprintf("PNG data URL, %d chars (ctrl+s to save)", len(st.Artifact))
	default:
		if len(st.Artifact) > previewLimit {
			return st.Artifact[:previewLimit] + "..."
		}
		return st.Artifact
	}
}
