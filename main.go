package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cyberdesk/internal/config"
	"cyberdesk/internal/desktop"
	"cyberdesk/internal/icons"
	"cyberdesk/internal/launcher"
	"cyberdesk/internal/logging"
	"cyberdesk/internal/scanner"
	"cyberdesk/internal/ui"
	"cyberdesk/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
)

const (
	// resizeDebounce is how long the window size must be stable before the
	// grid is laid out again
	resizeDebounce = 300 * time.Millisecond

	// notificationTTL is how long a notification stays on screen
	notificationTTL = 3 * time.Second

	// chromeHeight is the number of lines around the grid: header, status,
	// notification and help bar
	chromeHeight = 4
)

// Screen represents different screens in the app
type Screen int

const (
	ScreenMain Screen = iota
	ScreenHelp
	ScreenDetails
)

// notification is a transient message shown above the help bar
type notification struct {
	id   int
	kind ui.NotificationType
	text string
}

// Model is the main application model
type Model struct {
	config   *config.Config
	scanner  *scanner.Scanner
	launcher *launcher.Launcher
	catalog  *scanner.Catalog
	log      *slog.Logger

	// UI Components
	grid        *components.AppGrid
	details     *components.Details
	helpOverlay *components.HelpOverlay
	help        help.Model
	keys        ui.KeyMap

	// State
	screen       Screen
	width        int
	height       int
	sized        bool // Received the first window size
	loading      bool
	resizeSeq    int
	notifySeq    int
	notification *notification
}

// catalogMsg carries a freshly built catalog; it replaces the old one
type catalogMsg struct {
	catalog *scanner.Catalog
	reload  bool
}

// resizeMsg fires after the debounce delay of the resize with the same seq
type resizeMsg struct {
	seq int
}

// launchResultMsg reports the outcome of a launch
type launchResultMsg struct {
	name string
	err  error
}

// clearNotificationMsg expires the notification with the same id
type clearNotificationMsg struct {
	id int
}

// New builds the model from a loaded configuration
func New(cfg *config.Config) *Model {
	resolver := icons.NewResolver(cfg.IconRoots)
	glyphs := icons.NewGlyphTable(cfg.GlyphOverrides)
	parser := desktop.NewParser(resolver, glyphs)

	keys := ui.DefaultKeyMap()

	return &Model{
		config:  cfg,
		scanner: scanner.New(parser, cfg.DescriptorDirs),
		launcher: launcher.New(&launcher.Config{
			Terminal: cfg.Terminal,
			HomeDir:  cfg.HomeDir,
		}),
		log:         logging.Component("ui"),
		grid:        components.NewAppGrid(nil),
		details:     components.NewDetails(),
		helpOverlay: components.NewHelpOverlay(keys),
		help:        help.New(),
		keys:        keys,
		screen:      ScreenMain,
		width:       80,
		height:      24,
		loading:     true,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("CyberDesk"),
		m.scanCatalog(false),
	)
}

// scanCatalog rebuilds the catalog off the UI goroutine
func (m *Model) scanCatalog(reload bool) tea.Cmd {
	s := m.scanner
	return func() tea.Msg {
		return catalogMsg{catalog: s.Scan(), reload: reload}
	}
}

// launch starts the entry; the result comes back as a launchResultMsg
func (m *Model) launch() tea.Cmd {
	entry, ok := m.grid.Current()
	if !ok {
		return nil
	}
	l := m.launcher
	return func() tea.Msg {
		return launchResultMsg{name: entry.DisplayName(), err: l.Launch(entry)}
	}
}

// notify shows a notification and schedules its expiry
func (m *Model) notify(kind ui.NotificationType, text string) tea.Cmd {
	m.notifySeq++
	id := m.notifySeq
	m.notification = &notification{id: id, kind: kind, text: text}
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{id: id}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.sized {
			m.sized = true
			m.layout()
			return m, nil
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeMsg{seq: seq}
		})

	case resizeMsg:
		if msg.seq == m.resizeSeq {
			m.layout()
		}
		return m, nil

	case catalogMsg:
		m.loading = false
		m.catalog = msg.catalog
		m.grid.SetEntries(msg.catalog.Entries)
		m.log.Debug("catalog loaded",
			"entries", msg.catalog.Len(),
			"skipped", msg.catalog.Skipped,
			"fallback", msg.catalog.Fallback)
		if msg.reload {
			return m, m.notify(ui.NotifySuccess, "Apps reloaded")
		}
		return m, nil

	case launchResultMsg:
		if msg.err != nil {
			m.log.Debug("launch failed", "app", msg.name, "error", msg.err)
			return m, m.notify(ui.NotifyError, msg.err.Error())
		}
		return m, m.notify(ui.NotifyInfo, msg.name)

	case clearNotificationMsg:
		if m.notification != nil && m.notification.id == msg.id {
			m.notification = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.screen == ScreenDetails {
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenHelp:
		return m.handleHelpKeys(msg)
	case ScreenDetails:
		return m.handleDetailsKeys(msg)
	default:
		return m.handleMainKeys(msg)
	}
}

func (m *Model) handleMainKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Escape):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.screen = ScreenHelp

	case key.Matches(msg, m.keys.NextPage):
		m.grid.NextPage()

	case key.Matches(msg, m.keys.PrevPage):
		m.grid.PrevPage()

	case key.Matches(msg, m.keys.Right):
		m.grid.MoveRight()

	case key.Matches(msg, m.keys.Left):
		m.grid.MoveLeft()

	case key.Matches(msg, m.keys.Down):
		m.grid.MoveDown()

	case key.Matches(msg, m.keys.Up):
		m.grid.MoveUp()

	case key.Matches(msg, m.keys.Home):
		m.grid.GoToFirst()

	case key.Matches(msg, m.keys.End):
		m.grid.GoToLast()

	case key.Matches(msg, m.keys.Launch):
		return m, m.launch()

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.scanCatalog(true)

	case key.Matches(msg, m.keys.Info):
		if entry, ok := m.grid.Current(); ok {
			m.details.Load(entry)
			m.screen = ScreenDetails
		}
	}

	return m, nil
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help):
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) handleDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Info), key.Matches(msg, m.keys.Quit):
		m.screen = ScreenMain
		return m, nil
	case key.Matches(msg, m.keys.Launch):
		m.screen = ScreenMain
		return m, m.launch()
	case key.Matches(msg, m.keys.Down):
		m.details.ScrollDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.details.ScrollUp()
		return m, nil
	}

	var cmd tea.Cmd
	m.details, cmd = m.details.Update(msg)
	return m, cmd
}

// layout sizes the components for the current window
func (m *Model) layout() {
	m.grid.SetSize(m.width-2, m.height-chromeHeight)
	m.details.SetSize(m.width-2, m.height-chromeHeight)
	m.help.Width = m.width - 2
}

func (m *Model) View() string {
	switch m.screen {
	case ScreenHelp:
		return m.helpOverlay.View(m.width, m.height)
	case ScreenDetails:
		return m.renderFrame(m.details.View())
	default:
		return m.renderFrame(m.renderGrid())
	}
}

func (m *Model) renderGrid() string {
	if m.loading && m.catalog == nil {
		return ui.MutedStyle.Render("Scanning applications...")
	}
	body := m.grid.View()
	return lipgloss.PlaceHorizontal(m.width-2, lipgloss.Center, body)
}

// renderFrame puts body between the header and the status, notification
// and help lines
func (m *Model) renderFrame(body string) string {
	bodyHeight := max(1, m.height-chromeHeight)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return ui.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatusBar(),
		m.renderNotification(),
		ui.HelpBarStyle.Render(m.help.View(m.keys)),
	))
}

func (m *Model) renderHeader() string {
	title := ui.TitleStyle.Render("CyberDesk")
	ver := ui.VersionStyle.Render("v" + version)
	return ui.HeaderStyle.Render(title + "  " + ver)
}

func (m *Model) renderStatusBar() string {
	status := ui.StatusTextStyle.Render(m.grid.Status())
	if m.loading {
		status += "  •  scanning"
	}
	if m.catalog != nil && m.catalog.Skipped > 0 {
		status += fmt.Sprintf("  •  %d skipped", m.catalog.Skipped)
	}
	return ui.StatusBarStyle.Render(status)
}

func (m *Model) renderNotification() string {
	if m.notification == nil {
		return ""
	}
	return ui.RenderNotification(m.notification.kind, m.notification.text)
}

// warnConfig reports a config that could not be used. The log file only
// exists in debug mode, so the warning also goes to w, which stays visible
// once the alt screen is left.
func warnConfig(w io.Writer, cfg *config.Config, err error) {
	fmt.Fprintf(w, "Warning: %v (using defaults)\n", err)
	slog.Warn("config unreadable, using defaults", "path", cfg.ConfigPath(), "error", err)
}

func main() {
	debug := false

	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("cyberdesk %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("cyberdesk - A terminal application launcher")
			fmt.Println()
			fmt.Println("Usage: cyberdesk [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to " + filepath.Join(config.ConfigDir(), "cyberdesk.log") + ")")
			fmt.Println()
			fmt.Println("Run without arguments to start the TUI.")
			return
		case "-d", "--debug", "debug":
			debug = true
		}
	}

	cfg, cfgErr := config.Load()
	cfg.Debug = cfg.Debug || debug

	if cfg.Debug {
		if err := cfg.EnsureDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	closeLog, err := logging.Init(cfg.LogPath(), cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if cfgErr != nil {
		warnConfig(os.Stderr, cfg, cfgErr)
	}
	slog.Debug("starting", "version", version, "dirs", cfg.DescriptorDirs, "icon_roots", len(cfg.IconRoots))

	p := tea.NewProgram(New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
