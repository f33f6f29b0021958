package scanner

import (
	"log/slog"
	"strings"

	"github.com/origadmin/reflgen/internal/model"
)

// Source pairs a header with its masked code and namespace trace.
type Source struct {
	File  *model.SourceFile
	Code  string
	Trace NamespaceTrace
}

// Body is a class body in raw and masked form. Both have the same length.
type Body struct {
	Raw  string
	Code string
}

// NewBody masks raw on its own. Used when a body is not cut from a Source.
func NewBody(raw string) Body {
	return Body{Raw: raw, Code: Mask(raw)}
}

// Scanner runs the extractors over one header at a time.
type Scanner struct {
	rules *Rules
	mode  model.NamespaceMode
}

// New creates a Scanner. An empty mode means NamespaceDepth.
func New(rules *Rules, mode model.NamespaceMode) *Scanner {
	if rules == nil {
		rules = DefaultRules()
	}
	if mode == "" {
		mode = model.NamespaceDepth
	}
	return &Scanner{rules: rules, mode: mode}
}

// Rules returns the rule table in use.
func (s *Scanner) Rules() *Rules {
	return s.rules
}

// Prepare masks a header and resolves its namespaces once, so several
// markers can be extracted from it without rescanning.
func (s *Scanner) Prepare(file *model.SourceFile) *Source {
	src := &Source{File: file, Code: Mask(file.Content)}
	src.Trace = ResolveNamespaces(src, s.mode, s.rules)
	return src
}

// Extract finds every class annotated with marker in src and fills in its
// constructors and properties.
func (s *Scanner) Extract(src *Source, marker string) []*model.ClassInfo {
	classes := Classes(src, s.rules, marker)
	for _, cls := range classes {
		body := Body{
			Raw:  src.File.Content[cls.Body.Start:cls.Body.End],
			Code: src.Code[cls.Body.Start:cls.Body.End],
		}
		cls.Constructors = Constructors(body, cls.Name, s.rules)
		cls.Properties = Properties(body, s.rules)
		slog.Debug("Extracted class",
			"file", src.File.Path,
			"class", cls.QualifiedName,
			"marker", marker,
			"constructors", len(cls.Constructors),
			"properties", len(cls.Properties))
	}
	return classes
}

// Classes locates declarations annotated with marker. Matching runs on masked
// code, so commented-out declarations are ignored. Each body runs from the end
// of its declaration to the start of the next one, or to end of file.
func Classes(src *Source, rules *Rules, marker string) []*model.ClassInfo {
	re, ok := rules.ClassPattern(marker)
	if !ok {
		return nil
	}
	matches := re.FindAllStringSubmatchIndex(src.Code, -1)
	if len(matches) == 0 {
		return nil
	}

	classes := make([]*model.ClassInfo, 0, len(matches))
	for i, m := range matches {
		name := src.Code[m[4]:m[5]]
		line := strings.Count(src.Code[:m[0]], "\n")
		ns := src.Trace.At(line)

		end := len(src.Code)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		classes = append(classes, &model.ClassInfo{
			Name:          name,
			QualifiedName: model.QualifyName(ns, name),
			Namespace:     ns,
			Kind:          model.ParseDeclKind(src.Code[m[2]:m[3]]),
			Marker:        marker,
			Line:          line,
			Body:          model.Span{Start: m[1], End: end},
			File:          src.File,
		})
	}
	return classes
}
