package cli

import (
	"github.com/atotto/clipboard"

	"llm2sh/internal/ports"
)

// Clipboard copies generated commands via the system clipboard.
type Clipboard struct{}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) Enabled() bool {
	return !clipboard.Unsupported
}

func (c *Clipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ ports.Clipboard = (*Clipboard)(nil)
