// Package launcher starts catalog entries as detached processes.
package launcher

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"

	"cyberdesk/internal/logging"
	"cyberdesk/internal/models"
)

// Config holds launcher configuration
type Config struct {
	// Terminal is the preferred emulator, "auto" or empty to detect
	Terminal string

	// HomeDir is the working directory of launched programs
	HomeDir string
}

// DefaultConfig returns the default launcher configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Terminal: "auto",
		HomeDir:  home,
	}
}

// Launcher turns entries into running processes
type Launcher struct {
	cfg *Config
	log *slog.Logger

	// LookPath resolves a program name. Defaults to exec.LookPath.
	LookPath func(file string) (string, error)

	// Start spawns a prepared command. The default starts it and releases
	// the process so it is never waited on.
	Start func(cmd *exec.Cmd) error
}

// New creates a new Launcher
func New(cfg *Config) *Launcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Launcher{
		cfg:      cfg,
		log:      logging.Component("launcher"),
		LookPath: exec.LookPath,
		Start:    startDetached,
	}
}

// DetectTerminal finds an installed emulator, preferred one first
func (l *Launcher) DetectTerminal() (Terminal, error) {
	for _, t := range priority(l.cfg.Terminal) {
		if l.isCommandAvailable(t.Command) {
			return t, nil
		}
	}
	return Terminal{}, ErrNoTerminalAvailable
}

// Command builds the argv that Launch would execute. The first element is
// the resolved executable path.
func (l *Launcher) Command(entry models.AppEntry) ([]string, error) {
	argv := splitCommand(entry.Exec)
	if len(argv) == 0 {
		return nil, ErrNothingToLaunch
	}

	if entry.Terminal {
		term, err := l.DetectTerminal()
		if err != nil {
			return nil, err
		}
		argv = term.Wrap(argv)
	}

	path, err := l.LookPath(argv[0])
	if err != nil {
		return nil, &ExecutableNotFoundError{Name: argv[0]}
	}
	argv[0] = path

	return argv, nil
}

// Launch starts the entry detached from the launcher: new session, null
// stdio and the home directory as working directory. It returns once the
// process has been created.
func (l *Launcher) Launch(entry models.AppEntry) error {
	argv, err := l.Command(entry)
	if err != nil {
		l.log.Debug("launch refused", "app", entry.Name, "exec", entry.Exec, "error", err)
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = l.cfg.HomeDir
	cmd.SysProcAttr = detached()
	// nil stdio means the null device

	if err := l.Start(cmd); err != nil {
		l.log.Debug("launch failed", "app", entry.Name, "argv", argv, "error", err)
		var perr *ProcessError
		if errors.As(err, &perr) {
			return perr
		}
		return &ProcessError{Err: err}
	}

	l.log.Debug("launched", "app", entry.Name, "argv", argv)
	return nil
}

// isCommandAvailable checks if a command exists in PATH
func (l *Launcher) isCommandAvailable(name string) bool {
	_, err := l.LookPath(name)
	return err == nil
}

// splitCommand tokenizes with shell rules, falling back to whitespace
func splitCommand(command string) []string {
	argv, err := shlex.Split(command)
	if err != nil {
		return strings.Fields(command)
	}
	return argv
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
