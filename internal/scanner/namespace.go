package scanner

import (
	"strings"

	"github.com/origadmin/reflgen/internal/model"
)

// NamespaceTrace holds, for each line of a file, the "::"-joined namespace
// path enclosing that line. Global scope is the empty string.
type NamespaceTrace []string

// At returns the namespace for a zero-based line, or "" when out of range.
func (t NamespaceTrace) At(line int) string {
	if line < 0 || line >= len(t) {
		return ""
	}
	return t[line]
}

// ResolveNamespaces computes the trace for src using the given mode.
// The raw text drives NamespaceHeuristic; the masked text drives NamespaceDepth.
func ResolveNamespaces(src *Source, mode model.NamespaceMode, rules *Rules) NamespaceTrace {
	if mode == model.NamespaceHeuristic {
		return heuristicNamespaces(src.File.Content, rules)
	}
	return depthNamespaces(src.Code)
}

// heuristicNamespaces pushes on `namespace X {` and pops once on any line that
// contains '}'. Unrelated closing braces corrupt the stack.
func heuristicNamespaces(content string, rules *Rules) NamespaceTrace {
	re := rules.Pattern(KindNamespace)
	lines := splitLines(content)
	trace := make(NamespaceTrace, 0, len(lines))
	var stack []string
	for _, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			stack = append(stack, m[1])
		}
		if strings.Contains(line, "}") && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
		trace = append(trace, strings.Join(stack, "::"))
	}
	return trace
}

type nsFrame struct {
	name  string
	depth int
}

// braceTracker is the state machine behind NamespaceDepth. It consumes masked
// code one byte at a time and knows the namespace stack at every point.
type braceTracker struct {
	depth   int
	frames  []nsFrame
	pending bool
	name    string

	word     strings.Builder
	prevWord string
	// expectName is set after the keyword namespace until the name (or the
	// absence of one) is known.
	expectName bool
}

func (b *braceTracker) path() string {
	if len(b.frames) == 0 {
		return ""
	}
	names := make([]string, len(b.frames))
	for i, f := range b.frames {
		names[i] = f.name
	}
	return strings.Join(names, "::")
}

func (b *braceTracker) flushWord() {
	if b.word.Len() == 0 {
		return
	}
	w := b.word.String()
	b.word.Reset()

	switch {
	case b.expectName:
		b.expectName = false
		b.pending = true
		b.name = w
	case w == "namespace" && b.prevWord != "using":
		b.expectName = true
	}
	b.prevWord = w
}

func (b *braceTracker) feed(c byte) {
	// A nested name "A::B" continues across the separator.
	if isIdentByte(c) || (c == ':' && b.expectName && b.word.Len() > 0) {
		b.word.WriteByte(c)
		return
	}
	b.flushWord()

	switch c {
	case '{':
		b.depth++
		if b.expectName {
			// Anonymous namespace: a plain brace for our purposes.
			b.expectName = false
		} else if b.pending && b.name != "" {
			b.frames = append(b.frames, nsFrame{name: strings.Trim(b.name, ":"), depth: b.depth})
		}
		b.pending = false
		b.name = ""
	case '}':
		if b.depth > 0 {
			b.depth--
		}
		for len(b.frames) > 0 && b.frames[len(b.frames)-1].depth > b.depth {
			b.frames = b.frames[:len(b.frames)-1]
		}
		b.pending = false
	case ';', '=':
		// `namespace A = B;` is an alias, not a scope.
		b.pending = false
		b.expectName = false
		b.name = ""
	case ' ', '\t', '\r', '\n', '\f', '\v':
	default:
		if b.expectName {
			b.expectName = false
		}
	}
}

// depthNamespaces tracks real brace depth on masked code. A namespace frame
// is popped only by the brace that closes it, and the opening brace may sit
// on a later line than the namespace keyword.
func depthNamespaces(code string) NamespaceTrace {
	lines := splitLines(code)
	trace := make(NamespaceTrace, 0, len(lines))
	var b braceTracker
	for _, line := range lines {
		for i := 0; i < len(line); i++ {
			b.feed(line[i])
		}
		b.feed('\n')
		trace = append(trace, b.path())
	}
	return trace
}
