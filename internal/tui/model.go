package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	vdialog "vectoriser/internal/dialog"
	"vectoriser/internal/errors"
	"vectoriser/internal/log"
	"vectoriser/internal/shell"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gobwas/glob"
)

// dialogChrome is the number of lines the dialog frame adds around the
// file list.
const dialogChrome = 8

// Model is the terminal rendition of the application window.
type Model struct {
	shell  *shell.Shell
	dialog *fileDialog
	err    error
	width  int
	height int

	// cmd carries the command produced while dispatching to the shell
	// back to Update.
	cmd tea.Cmd
}

// fileDialog is the open file-picker modal.
type fileDialog struct {
	req   shell.Request
	reply func(shell.Msg)
	fp    filepicker.Model
	match glob.Glob
	hint  string
}

// New creates a model that picks files with opts.
func New(opts vdialog.Options, options ...shell.Option) *Model {
	m := &Model{}
	options = append(options, shell.WithErrorHandler(func(err error) {
		m.err = err
		m.dialog = nil
	}))
	m.shell = shell.New(m, opts, options...)
	return m
}

// Run starts the terminal program and blocks until the user quits.
func Run(opts vdialog.Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State returns the application state.
func (m *Model) State() shell.State {
	return m.shell.State()
}

// DialogOpen reports whether the file picker is showing.
func (m *Model) DialogOpen() bool {
	return m.dialog != nil
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.dialog != nil {
			m.dialog.fp.Height = m.pickerHeight()
		}
		return m, nil

	case tea.KeyMsg:
		if m.dialog != nil {
			return m, m.updateDialog(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", " ", "o":
			m.err = nil
			return m, m.dispatch(shell.RequestFilePick{})
		}
		return m, nil
	}

	if m.dialog != nil {
		return m, m.updateDialog(msg)
	}
	return m, nil
}

func (m *Model) dispatch(msg shell.Msg) tea.Cmd {
	m.shell.Dispatch(msg)
	cmd := m.cmd
	m.cmd = nil
	return cmd
}

// Pick implements shell.Picker by opening the file-picker modal.
func (m *Model) Pick(req shell.Request, reply func(shell.Msg)) {
	dir, err := startDir(req.Options.StartDir)
	if err != nil {
		reply(shell.PickFailed{
			RequestID: req.ID,
			Err:       errors.NewDialogError("cannot open file dialog", req.Options.Title, errors.DialogFailed, err),
		})
		return
	}
	match, err := req.Options.Matcher()
	if err != nil {
		reply(shell.PickFailed{
			RequestID: req.ID,
			Err:       errors.NewDialogError("cannot open file dialog", req.Options.Title, errors.DialogFailed, err),
		})
		return
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = req.Options.DotExtensions()
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = m.pickerHeight()
	fp.Styles = filePickerStyles()

	m.dialog = &fileDialog{req: req, reply: reply, fp: fp, match: match}
	m.cmd = fp.Init()
}

// startDir falls back to the working directory when dir is unset or
// no longer exists.
func startDir(dir string) (string, error) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		log.Debugf("Start directory %s unavailable, using working directory", dir)
	}
	return os.Getwd()
}

func (m *Model) updateDialog(msg tea.Msg) tea.Cmd {
	d := m.dialog

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m.closeDialog(shell.Cancelled(d.req.ID))
		case "ctrl+c":
			return tea.Batch(m.closeDialog(shell.Cancelled(d.req.ID)), tea.Quit)
		}
	}

	var cmd tea.Cmd
	d.fp, cmd = d.fp.Update(msg)

	if ok, path := d.fp.DidSelectFile(msg); ok {
		if !d.match.Match(filepath.Base(path)) {
			d.hint = fmt.Sprintf("%s does not match %s", filepath.Base(path), d.req.Options.Pattern())
			return cmd
		}
		return m.closeDialog(shell.Picked(d.req.ID, path))
	}
	if ok, path := d.fp.DidSelectDisabledFile(msg); ok {
		d.hint = fmt.Sprintf("%s is not one of %s", filepath.Base(path), strings.Join(d.req.Options.Extensions, ", "))
		return cmd
	}

	return cmd
}

func (m *Model) closeDialog(result shell.Msg) tea.Cmd {
	reply := m.dialog.reply
	m.dialog = nil
	reply(result)
	cmd := m.cmd
	m.cmd = nil
	return cmd
}

func (m *Model) pickerHeight() int {
	if m.height-dialogChrome < 5 {
		return 5
	}
	return m.height - dialogChrome
}

// View implements tea.Model
func (m *Model) View() string {
	var body string
	if m.dialog != nil {
		body = m.dialogView()
	} else {
		body = m.mainView()
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) mainView() string {
	parts := []string{
		ButtonStyle.Render("Select Image"),
		"",
		StatusStyle.Render(m.shell.State().StatusText()),
	}
	if m.err != nil {
		parts = append(parts, "", ErrorStyle.Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *Model) dialogView() string {
	d := m.dialog
	opts := d.req.Options

	filter := fmt.Sprintf("%s (%s)", opts.FilterName, strings.Join(opts.DotExtensions(), ", "))
	lines := []string{
		TitleStyle.Render(opts.Title),
		StatusStyle.Render(filter),
		StatusStyle.Render(d.fp.CurrentDirectory),
		"",
		d.fp.View(),
	}
	if d.hint != "" {
		lines = append(lines, ErrorStyle.Render(d.hint))
	}
	lines = append(lines, HelpStyle.Render("enter: select • ←/h: up • esc: cancel"))

	return DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
