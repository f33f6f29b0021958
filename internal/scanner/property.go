package scanner

import (
	"strings"

	"github.com/origadmin/reflgen/internal/model"
)

// Properties extracts annotated fields from a class body in declaration order.
//
// Access starts at private for every body, struct included, and changes at
// each visibility label. A label applies to the declarations after it, on the
// same line or below, so `{ public: PROPERTY() int x; }` yields a public x.
// Text that carries the marker but does not fit the pattern is skipped.
func Properties(body Body, rules *Rules) []*model.Property {
	re := rules.Pattern(KindProperty)
	labels := rules.Pattern(KindAccess)
	rawLines := strings.Split(body.Raw, "\n")
	codeLines := strings.Split(body.Code, "\n")

	var props []*model.Property
	access := model.Private
	for i, code := range codeLines {
		if i >= len(rawLines) {
			break
		}
		marks := labels.FindAllStringSubmatchIndex(code, -1)
		var matches [][]int
		if strings.Contains(code, rules.PropertyMarker) {
			// Match on masked code so string defaults cannot end a match early,
			// then read the captures from the raw line at the same offsets.
			matches = re.FindAllStringSubmatchIndex(code, -1)
		}
		if len(marks) == 0 && len(matches) == 0 {
			continue
		}

		raw := rawLines[i]
		next := 0
		applyLabels := func(before int) {
			for ; next < len(marks) && marks[next][0] < before; next++ {
				if level, ok := model.ParseAccessKeyword(code[marks[next][2]:marks[next][3]]); ok {
					access = level
				}
			}
		}
		for _, m := range matches {
			applyLabels(m[0])
			prop := &model.Property{
				Type:   strings.TrimSpace(raw[m[2]:m[3]]),
				Name:   strings.TrimSpace(raw[m[4]:m[5]]),
				Access: access,
				Line:   i,
			}
			if m[6] >= 0 {
				if def := strings.TrimSpace(raw[m[6]:m[7]]); def != "" {
					prop.Default = def
					prop.HasDefault = true
				}
			}
			props = append(props, prop)
		}
		applyLabels(len(code))
	}
	return props
}
