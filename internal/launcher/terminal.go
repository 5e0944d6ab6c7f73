package launcher

import "fmt"

// Terminal is an emulator that can run a command given after Flag
type Terminal struct {
	Command string
	Flag    string // Empty means the command follows the executable directly
}

// Wrap prefixes argv so it runs inside the terminal
func (t Terminal) Wrap(argv []string) []string {
	out := []string{t.Command}
	if t.Flag != "" {
		out = append(out, t.Flag)
	}
	return append(out, argv...)
}

// String returns the terminal as it appears on a command line
func (t Terminal) String() string {
	if t.Flag == "" {
		return t.Command
	}
	return fmt.Sprintf("%s %s", t.Command, t.Flag)
}

// defaultTerminals is the probe order used for auto-detection
var defaultTerminals = []Terminal{
	{Command: "x-terminal-emulator", Flag: "-e"},
	{Command: "gnome-terminal", Flag: "--"},
	{Command: "kitty", Flag: "-e"},
	{Command: "alacritty", Flag: "-e"},
	{Command: "xfce4-terminal", Flag: "-x"},
	{Command: "konsole", Flag: "-e"},
	{Command: "terminator", Flag: "-x"},
	{Command: "xterm", Flag: "-e"},
}

// DefaultTerminals returns a copy of the built-in probe order
func DefaultTerminals() []Terminal {
	return append([]Terminal(nil), defaultTerminals...)
}

// priority returns the probe order with the preferred emulator first.
// An unknown preferred name is assumed to accept -e.
func priority(preferred string) []Terminal {
	if preferred == "" || preferred == "auto" {
		return DefaultTerminals()
	}

	first := Terminal{Command: preferred, Flag: "-e"}
	rest := make([]Terminal, 0, len(defaultTerminals))
	for _, t := range defaultTerminals {
		if t.Command == preferred {
			first = t
			continue
		}
		rest = append(rest, t)
	}
	return append([]Terminal{first}, rest...)
}
