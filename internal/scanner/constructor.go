package scanner

import (
	"strings"

	"github.com/origadmin/reflgen/internal/model"
)

// Constructors finds call-like patterns named after the class and derives a
// parameter-type signature for each. Every other call-like match is dropped.
// A match with no arguments yields an explicit empty signature.
func Constructors(body Body, className string, rules *Rules) []model.Constructor {
	re := rules.Pattern(KindConstructor)
	var ctors []model.Constructor
	for _, m := range re.FindAllStringSubmatch(body.Code, -1) {
		if m[1] != className {
			continue
		}
		ctors = append(ctors, model.Constructor{ParamTypes: ParamTypes(m[2])})
	}
	return ctors
}

// ParamTypes splits an argument list into parameter types. A fragment of
// several words keeps its second-to-last word ("const Vec2& v" -> "Vec2&");
// a single word is kept whole. Default arguments are dropped first.
func ParamTypes(args string) []string {
	types := []string{}
	for _, frag := range strings.Split(args, ",") {
		frag = strings.TrimSpace(frag)
		if eq := strings.Index(frag, "="); eq >= 0 {
			frag = strings.TrimSpace(frag[:eq])
		}
		if frag == "" {
			continue
		}
		words := strings.Fields(frag)
		if len(words) > 1 {
			types = append(types, words[len(words)-2])
		} else {
			types = append(types, frag)
		}
	}
	return types
}
