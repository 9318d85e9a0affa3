// Package extract turns free-form model output into an ordered plan of shell
// commands. Small models reliably make a fixed set of formatting mistakes;
// the extractor corrects them instead of rejecting the response.
//
// Grammar, paired with the instruction contract in internal/prompt:
//   - markdown fence lines (``` with any language tag) are discarded
//   - a leading "$ " user-prompt marker is stripped
//   - blank lines and #-prefixed lines separate commands; a bare # line is
//     always treated as non-executable commentary, never as a root prompt
//   - conversational openers ("Sure...", "Here...") are discarded
//   - a trailing unescaped backslash, an unclosed quote, or an unclosed
//     bracket continues the same logical command onto the next line
//
// Inside a continuation nothing is stripped or discarded: the raw lines are
// joined with "\n" so the emitted command preserves its exact bytes.
package extract

import (
	"strings"

	"llm2sh/internal/domain"
)

// Commands extracts the ordered command plan from raw model output. No
// command-like content yields an empty plan, not an error. Extraction is
// idempotent: Commands(plan.Join()) == plan.
func Commands(raw string) domain.CommandPlan {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var plan domain.CommandPlan
	var pending []string
	var st scanState

	for _, line := range strings.Split(raw, "\n") {
		if len(pending) == 0 {
			cleaned, ok := cleanLeadLine(line)
			if !ok {
				continue
			}
			st = scanState{}
			st.scan(cleaned)
			if st.open() {
				pending = []string{cleaned}
				continue
			}
			plan = append(plan, cleaned)
			continue
		}

		// Continuation: the line belongs to the current logical command and
		// must not be cleaned or discarded.
		if !st.inQuote() {
			line = strings.TrimRight(line, " \t")
		}
		st.scan(line)
		pending = append(pending, line)
		if !st.open() {
			plan = append(plan, strings.Join(pending, "\n"))
			pending = nil
		}
	}

	// An unterminated command at end of input is emitted as-is rather than
	// dropped: executing it surfaces the model's mistake to the user.
	if len(pending) > 0 {
		plan = append(plan, strings.Join(pending, "\n"))
	}

	return plan
}

// cleanLeadLine applies the repairs valid only at the start of a logical
// command. It reports false when the line is a separator, not a command.
func cleanLeadLine(line string) (string, bool) {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")

	switch {
	case trimmed == "":
		return "", false
	case strings.HasPrefix(trimmed, "```"):
		return "", false
	case strings.HasPrefix(trimmed, "#"):
		return "", false
	case strings.HasPrefix(trimmed, "Sure"), strings.HasPrefix(trimmed, "Here"):
		return "", false
	}

	if rest, ok := strings.CutPrefix(trimmed, "$ "); ok {
		// Prompt markers never carry meaningful indentation.
		return unwrapQuotes(rest), true
	}

	indent := line[:len(line)-len(trimmed)]
	return indent + unwrapQuotes(trimmed), true
}

// unwrapQuotes removes one pair of wrapping backticks or quotes around an
// entire line. The quote character must not recur inside, so legitimate
// quoting like `echo "a" "b"` is left untouched.
func unwrapQuotes(line string) string {
	for _, quote := range []byte{'`', '"', '\''} {
		if len(line) < 2 || line[0] != quote || line[len(line)-1] != quote {
			continue
		}
		inner := line[1 : len(line)-1]
		if !strings.ContainsRune(inner, rune(quote)) {
			line = inner
		}
	}
	return line
}

// scanState tracks shell lexical state across physical lines.
type scanState struct {
	inSingle      bool
	inDouble      bool
	inBacktick    bool
	bracketDepth  int
	contBackslash bool
}

func (s *scanState) inQuote() bool {
	return s.inSingle || s.inDouble || s.inBacktick
}

func (s *scanState) open() bool {
	return s.inQuote() || s.bracketDepth > 0 || s.contBackslash
}

// scan consumes one physical line and updates the lexical state. A backslash
// pending at end of line (outside single quotes) marks a line continuation.
func (s *scanState) scan(line string) {
	s.contBackslash = false
	escaped := false

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == '\\' && !s.inSingle:
			escaped = true
		case s.inSingle:
			if ch == '\'' {
				s.inSingle = false
			}
		case s.inDouble:
			if ch == '"' {
				s.inDouble = false
			}
		case s.inBacktick:
			if ch == '`' {
				s.inBacktick = false
			}
		case ch == '\'':
			s.inSingle = true
		case ch == '"':
			s.inDouble = true
		case ch == '`':
			s.inBacktick = true
		case ch == '#':
			// Trailing comment: the rest of the line has no lexical effect.
			return
		case ch == '(' || ch == '{' || ch == '[':
			s.bracketDepth++
		case ch == ')' || ch == '}' || ch == ']':
			if s.bracketDepth > 0 {
				s.bracketDepth--
			}
		}
	}

	s.contBackslash = escaped
}
