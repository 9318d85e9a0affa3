package cli

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"llm2sh/internal/domain"
	"llm2sh/internal/ports"
)

// Prompter asks for confirmation on the terminal. Without a TTY there is
// nobody to ask, so Enabled reports false and the caller treats the plan as
// declined rather than running it unseen.
type Prompter struct{}

// NewPrompter builds the interactive prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Enabled reports whether stdin is a terminal.
func (p *Prompter) Enabled() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm blocks for a yes/no answer; the default is no.
func (p *Prompter) Confirm(domain.CommandPlan) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: "Run the above commands?",
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
