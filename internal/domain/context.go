package domain

// MaxContextEntries is the upper bound applied uniformly to the
// directory-entry and environment-variable-name lists in a PromptContext.
// Lists at or below the bound are passed through whole.
const MaxContextEntries = 100

// PromptContext is a bounded snapshot of the caller's environment, gathered
// fresh per invocation and never persisted. It carries environment-variable
// NAMES only, never values, and directory entry names only, never contents.
type PromptContext struct {
	OS         string
	Distro     string
	User       string
	WorkingDir string
	DirEntries []string
	EnvNames   []string
}
