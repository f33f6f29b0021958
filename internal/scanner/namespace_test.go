package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/origadmin/reflgen/internal/model"
)

func trace(content string, mode model.NamespaceMode) NamespaceTrace {
	src := &Source{File: &model.SourceFile{Path: "t.h", Content: content}, Code: Mask(content)}
	return ResolveNamespaces(src, mode, DefaultRules())
}

func TestResolveNamespaces(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		depth     NamespaceTrace
		heuristic NamespaceTrace
	}{
		{
			name:      "nested namespaces",
			content:   "namespace App {\nnamespace UI {\nstruct COMPONENT() Widget {\n    PROPERTY() int x;\n};\n}\n}\n",
			depth:     NamespaceTrace{"App", "App::UI", "App::UI", "App::UI", "App::UI", "App", ""},
			heuristic: NamespaceTrace{"App", "App::UI", "App::UI", "App::UI", "App", "", ""},
		},
		{
			name:      "braces in strings comments and function bodies",
			content:   "namespace Game {\nconst char* s = \"}\";\n// }\ninline void f() { if (x) { y(); } }\nstruct CLASS() Player {\n};\n}\n",
			depth:     NamespaceTrace{"Game", "Game", "Game", "Game", "Game", "Game", ""},
			heuristic: NamespaceTrace{"Game", "", "", "", "", "", ""},
		},
		{
			name:      "opening brace on next line",
			content:   "namespace Luden\n{\n\tstruct ENGINE_API COMPONENT() Foo : public IComponent\n\t{\n\t};\n}\n",
			depth:     NamespaceTrace{"", "Luden", "Luden", "Luden", "Luden", ""},
			heuristic: NamespaceTrace{"", "", "", "", "", ""},
		},
		{
			name:      "using directive is not a scope",
			content:   "using namespace rttr;\nnamespace A {\n}\n",
			depth:     NamespaceTrace{"", "A", ""},
			heuristic: NamespaceTrace{"", "A", ""},
		},
		{
			name:      "anonymous namespace",
			content:   "namespace A {\nnamespace {\nint x;\n}\nint y;\n}\n",
			depth:     NamespaceTrace{"A", "A", "A", "A", "A", ""},
			heuristic: NamespaceTrace{"A", "A", "A", "", "", ""},
		},
		{
			name:      "namespace alias",
			content:   "namespace fs = std::filesystem;\nnamespace B {\n",
			depth:     NamespaceTrace{"", "B"},
			heuristic: NamespaceTrace{"", "B"},
		},
		{
			name:      "nested namespace definition",
			content:   "namespace A::B {\n}\n",
			depth:     NamespaceTrace{"A::B", ""},
			heuristic: NamespaceTrace{"A::B", ""},
		},
		{
			name:      "inline namespace on the same line",
			content:   "namespace A { inline namespace v1 {\nstruct X {};\n} }\n",
			depth:     NamespaceTrace{"A::v1", "A::v1", ""},
			heuristic: NamespaceTrace{"A", "", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.depth, trace(tt.content, model.NamespaceDepth), "depth")
			assert.Equal(t, tt.heuristic, trace(tt.content, model.NamespaceHeuristic), "heuristic")
		})
	}
}

func TestResolveNamespaces_OneEntryPerLine(t *testing.T) {
	for _, content := range []string{"", "a", "a\nb", "a\nb\n", "namespace X {\n\n\n}"} {
		want := len(splitLines(content))
		assert.Len(t, trace(content, model.NamespaceDepth), want, "%q", content)
		assert.Len(t, trace(content, model.NamespaceHeuristic), want, "%q", content)
	}
}

func TestNamespaceTrace_At(t *testing.T) {
	tr := NamespaceTrace{"A", "A::B"}
	assert.Equal(t, "A::B", tr.At(1))
	assert.Equal(t, "", tr.At(2))
	assert.Equal(t, "", tr.At(-1))
}
