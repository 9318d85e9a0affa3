// Package contextcollector gathers the bounded environment snapshot that the
// prompt builder embeds into the system prompt.
package contextcollector

import (
	"context"
	"os"
	"os/user"
	"runtime"
	"sort"
	"strings"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// junkEnvNames lists environment variables that are never useful to a model
// and only waste prompt budget.
var junkEnvNames = map[string]struct{}{
	// Terminal color settings
	"color_prompt": {}, "force_color_prompt": {},
	"COLORTERM": {}, "LSCOLORS": {}, "LS_COLORS": {}, "LS_OPTIONS": {}, "CLICOLOR": {},

	// GUI and auth implementation details
	"SESSION_MANAGER": {}, "TERM_PROGRAM_VERSION": {}, "VDPAU_DRIVER": {},
	"SSH_AUTH_SOCK": {}, "SYSTEMD_EXEC_PID": {}, "XAUTHORITY": {},

	// Misc others
	"MOTD_SHOWN": {}, "PYTHONSTARTUP": {}, "INVOCATION_ID": {},
}

var junkEnvPrefixes = []string{"VSCODE_", "COLOR_", "XDG_", "DBUS_", "GJS_", "GDM_", "GIO_"}

// Collector implements ports.ContextCollector against the local OS. The
// environ/getwd/readDir hooks exist so tests can exercise the bounding policy
// deterministically; production code uses NewCollector.
type Collector struct {
	maxEntries int
	environ    func() []string
	getwd      func() (string, error)
	readDir    func(string) ([]os.DirEntry, error)
}

// NewCollector builds a collector bound at domain.MaxContextEntries.
func NewCollector() *Collector {
	return &Collector{
		maxEntries: domain.MaxContextEntries,
		environ:    os.Environ,
		getwd:      os.Getwd,
		readDir:    os.ReadDir,
	}
}

// Collect gathers a fresh snapshot. Both name lists are lexically sorted
// before truncation so repeated calls in an unchanged environment produce an
// unchanged context.
func (c *Collector) Collect(context.Context) (domain.PromptContext, error) {
	wd, err := c.getwd()
	if err != nil {
		wd = "."
	}

	return domain.PromptContext{
		OS:         runtime.GOOS,
		Distro:     distroName(),
		User:       currentUser(),
		WorkingDir: wd,
		DirEntries: c.dirEntries(wd),
		EnvNames:   c.envNames(),
	}, nil
}

func (c *Collector) dirEntries(dir string) []string {
	entries, err := c.readDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return truncate(names, c.maxEntries)
}

// envNames returns environment-variable names only. Values never leave this
// function. The cap is applied after filtering and sorting, so the list is
// always the first maxEntries useful names in lexical order.
func (c *Collector) envNames() []string {
	var names []string
	for _, kv := range c.environ() {
		name, _, _ := strings.Cut(kv, "=")
		if name == "" || isJunkEnv(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return truncate(names, c.maxEntries)
}

func isJunkEnv(name string) bool {
	if _, ok := junkEnvNames[name]; ok {
		return true
	}
	for _, prefix := range junkEnvPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func truncate(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// distroName reads the human-readable distribution name from os-release.
func distroName() string {
	if runtime.GOOS != "linux" {
		return ""
	}
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		if value, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(value, `"`)
		}
	}
	return ""
}

var _ ports.ContextCollector = (*Collector)(nil)
