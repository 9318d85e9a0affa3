package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm2sh/internal/domain"
)

func TestCommandsBasicCleaning(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.CommandPlan
	}{
		{
			name: "single clean command",
			raw:  "ls -la\n",
			want: domain.CommandPlan{"ls -la"},
		},
		{
			name: "blank lines separate commands",
			raw:  "mkdir -p build\n\ncd build\n",
			want: domain.CommandPlan{"mkdir -p build", "cd build"},
		},
		{
			name: "fenced block with language tag",
			raw:  "```bash\napt update\napt install -y jq\n```\n",
			want: domain.CommandPlan{"apt update", "apt install -y jq"},
		},
		{
			name: "fence without tag",
			raw:  "```\necho hi\n```",
			want: domain.CommandPlan{"echo hi"},
		},
		{
			name: "dollar prompt marker stripped",
			raw:  "$ sudo systemctl restart nginx",
			want: domain.CommandPlan{"sudo systemctl restart nginx"},
		},
		{
			name: "hash lines are commentary, not commands",
			raw:  "# create the directory\nmkdir /tmp/x\n# done",
			want: domain.CommandPlan{"mkdir /tmp/x"},
		},
		{
			name: "conversational chatter removed",
			raw:  "Sure! Here is the command:\nwhoami\n",
			want: domain.CommandPlan{"whoami"},
		},
		{
			name: "inline backtick wrap unwrapped",
			raw:  "`docker ps -a`",
			want: domain.CommandPlan{"docker ps -a"},
		},
		{
			name: "legitimate quoting untouched",
			raw:  `echo "a" "b"`,
			want: domain.CommandPlan{`echo "a" "b"`},
		},
		{
			name: "leading indentation preserved",
			raw:  "cat <<EOF > run.py\n  print('hi')\nEOF",
			want: domain.CommandPlan{"cat <<EOF > run.py", "  print('hi')", "EOF"},
		},
		{
			name: "no command-like content",
			raw:  "Sure thing!\n\n# nothing to run\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commands(tt.raw))
		})
	}
}

func TestCommandsMultiLineContinuations(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.CommandPlan
	}{
		{
			name: "open double quote joins lines",
			raw:  "echo \"hello\nworld\"",
			want: domain.CommandPlan{"echo \"hello\nworld\""},
		},
		{
			name: "trailing backslash joins lines",
			raw:  "curl -fsSL https://example.com/install.sh \\\n  | sh",
			want: domain.CommandPlan{"curl -fsSL https://example.com/install.sh \\\n  | sh"},
		},
		{
			name: "open brace keeps loop together",
			raw:  "for f in *.log; do {\n  gzip \"$f\"\n}; done",
			want: domain.CommandPlan{"for f in *.log; do {\n  gzip \"$f\"\n}; done"},
		},
		{
			name: "subshell parentheses",
			raw:  "(cd /tmp &&\n ls)",
			want: domain.CommandPlan{"(cd /tmp &&\n ls)"},
		},
		{
			name: "blank line inside open quote is content",
			raw:  "echo \"first\n\nlast\"",
			want: domain.CommandPlan{"echo \"first\n\nlast\""},
		},
		{
			name: "hash inside continuation is kept",
			raw:  "echo \"a\n# not a comment\nb\"",
			want: domain.CommandPlan{"echo \"a\n# not a comment\nb\""},
		},
		{
			name: "single quotes disable backslash",
			raw:  "echo 'literal \\'\nls",
			want: domain.CommandPlan{"echo 'literal \\'", "ls"},
		},
		{
			name: "trailing comment does not open state",
			raw:  "ls # show (everything\npwd",
			want: domain.CommandPlan{"ls # show (everything", "pwd"},
		},
		{
			name: "commands after a continuation stay separate",
			raw:  "echo \"one\ntwo\"\ndate",
			want: domain.CommandPlan{"echo \"one\ntwo\"", "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Commands(tt.raw))
		})
	}
}

func TestCommandsPreserveOrderWithoutDedup(t *testing.T) {
	raw := "sudo newgrp docker\nsudo usermod -aG docker $USER\nsudo newgrp docker"
	want := domain.CommandPlan{
		"sudo newgrp docker",
		"sudo usermod -aG docker $USER",
		"sudo newgrp docker",
	}
	assert.Equal(t, want, Commands(raw))
}

func TestCommandsIdempotent(t *testing.T) {
	raws := []string{
		"```sh\n$ echo \"hello\nworld\"\n```\n# comment\nls -la \\\n  /tmp",
		"Sure! Run:\n`uptime`\n\nfree -h",
		"for i in 1 2 3; do\n  echo $i\ndone",
	}

	for _, raw := range raws {
		first := Commands(raw)
		require.NotEmpty(t, first)
		second := Commands(first.Join())
		assert.Equal(t, first, second, "extraction must be a fixed point for %q", raw)
	}
}

func TestCommandsUnterminatedQuoteEmitted(t *testing.T) {
	got := Commands("echo \"never closed")
	assert.Equal(t, domain.CommandPlan{"echo \"never closed"}, got)
}
