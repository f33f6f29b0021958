// Package scanner recovers reflection-relevant structure from C-family headers
// with text scanning and regular expressions instead of a real parser.
package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies what a pattern in the rule table extracts.
type Kind int

// Record kinds produced by the extractors.
const (
	KindClass Kind = iota
	KindProperty
	KindConstructor
	KindNamespace
	KindAccess
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindProperty:
		return "property"
	case KindConstructor:
		return "constructor"
	case KindNamespace:
		return "namespace"
	case KindAccess:
		return "access"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Default annotation markers.
const (
	MarkerComponent = "COMPONENT()"
	MarkerClass     = "CLASS()"
	MarkerProperty  = "PROPERTY()"
)

// DefaultClassMarkers are scanned in this order; output order follows it.
var DefaultClassMarkers = []string{MarkerComponent, MarkerClass}

const (
	// classPatternFmt takes the quoted class marker. The optional word before
	// the marker is an export macro such as ENGINE_API.
	classPatternFmt    = `\b(class|struct)\s+(?:\w+\s+)?%s\s+(\w+)`
	propertyPatternFmt = `%s\s+([\w:<>\s\*&]+)\s+(\w+)\s*(?:=\s*([^;]+))?;`
	constructorPattern = `(\w+)\s*\(([^)]*)\)`
	namespacePattern   = `namespace\s+([\w:]+)\s*\{`

	// accessPattern matches a visibility label but not a scope such as private::x.
	accessPattern = `\b(public|protected|private)\s*:(?:[^:]|$)`
)

// Rules is the table of compiled extraction patterns.
// Extractors only look patterns up here, so the matching strategy can be
// replaced without touching them.
type Rules struct {
	ClassMarkers   []string
	PropertyMarker string

	classes map[string]*regexp.Regexp
	table   map[Kind]*regexp.Regexp
}

// NewRules compiles the table for the given markers.
func NewRules(classMarkers []string, propertyMarker string) (*Rules, error) {
	if len(classMarkers) == 0 {
		return nil, fmt.Errorf("at least one class marker is required")
	}
	if strings.TrimSpace(propertyMarker) == "" {
		return nil, fmt.Errorf("property marker must not be empty")
	}

	r := &Rules{
		PropertyMarker: propertyMarker,
		classes:        make(map[string]*regexp.Regexp, len(classMarkers)),
		table:          make(map[Kind]*regexp.Regexp),
	}
	for _, marker := range classMarkers {
		marker = strings.TrimSpace(marker)
		if marker == "" {
			return nil, fmt.Errorf("class marker must not be empty")
		}
		if _, dup := r.classes[marker]; dup {
			continue
		}
		re, err := regexp.Compile(fmt.Sprintf(classPatternFmt, regexp.QuoteMeta(marker)))
		if err != nil {
			return nil, fmt.Errorf("compile class marker %q: %w", marker, err)
		}
		r.classes[marker] = re
		r.ClassMarkers = append(r.ClassMarkers, marker)
	}

	prop, err := regexp.Compile(fmt.Sprintf(propertyPatternFmt, regexp.QuoteMeta(propertyMarker)))
	if err != nil {
		return nil, fmt.Errorf("compile property marker %q: %w", propertyMarker, err)
	}
	r.table[KindProperty] = prop
	r.table[KindConstructor] = regexp.MustCompile(constructorPattern)
	r.table[KindNamespace] = regexp.MustCompile(namespacePattern)
	r.table[KindAccess] = regexp.MustCompile(accessPattern)
	return r, nil
}

// DefaultRules returns the table for COMPONENT(), CLASS() and PROPERTY().
func DefaultRules() *Rules {
	r, err := NewRules(DefaultClassMarkers, MarkerProperty)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the compiled pattern for kind. Class patterns are per
// marker; use ClassPattern for those.
func (r *Rules) Pattern(kind Kind) *regexp.Regexp {
	return r.table[kind]
}

// ClassPattern returns the declaration pattern for a class marker.
func (r *Rules) ClassPattern(marker string) (*regexp.Regexp, bool) {
	re, ok := r.classes[marker]
	return re, ok
}
