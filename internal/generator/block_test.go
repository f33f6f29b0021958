package generator

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origadmin/reflgen/internal/model"
)

func TestPropertyArgs(t *testing.T) {
	all := model.Features{EmitAccessFlags: true, EmitDefaultMetadata: true}
	tests := []struct {
		name     string
		prop     model.Property
		features model.Features
		want     []string
	}{
		{"public without default", model.Property{Access: model.Public}, all, nil},
		{"public with default", model.Property{Access: model.Public, Default: "1", HasDefault: true}, all,
			[]string{`metadata("default", "1")`}},
		{"private without default", model.Property{Access: model.Private}, all,
			[]string{"registration::private_access"}},
		{"protected with default", model.Property{Access: model.Protected, Default: "1", HasDefault: true}, all,
			[]string{`metadata("default", "1")`, "registration::private_access"}},
		{"features off", model.Property{Access: model.Private, Default: "1", HasDefault: true}, model.Features{}, nil},
		{"metadata only", model.Property{Access: model.Private, Default: "1", HasDefault: true},
			model.Features{EmitDefaultMetadata: true}, []string{`metadata("default", "1")`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PropertyArgs(&tt.prop, tt.features))
		})
	}
}

func TestEscapeString(t *testing.T) {
	assert.Equal(t, `0.0f`, EscapeString(`0.0f`))
	assert.Equal(t, `\"none\"`, EscapeString(`"none"`))
	assert.Equal(t, `C:\\dir`, EscapeString(`C:\dir`))
}

func TestRenderBlock(t *testing.T) {
	cls := &model.ClassInfo{
		Name:          "Position",
		QualifiedName: "Position",
		Constructors:  []model.Constructor{{ParamTypes: []string{"float", "float"}}},
		Properties: []*model.Property{
			{Name: "x", Access: model.Public},
			{Name: "y", Access: model.Public, Default: "0.0f", HasDefault: true},
		},
	}
	block, err := RenderBlock(cls, model.Features{EmitAccessFlags: true, EmitDefaultMetadata: true})
	require.NoError(t, err)
	assert.Equal(t, `    registration::class_<Position>("Position")
        .constructor<float, float>()
        .property("x", &Position::x)
        .property("y", &Position::y, metadata("default", "0.0f"))
    ;
`, block)
}

func TestRenderBlock_NoMembers(t *testing.T) {
	block, err := RenderBlock(&model.ClassInfo{Name: "Empty", QualifiedName: "A::Empty"}, model.Features{})
	require.NoError(t, err)
	assert.Equal(t, "    registration::class_<A::Empty>(\"Empty\")\n    ;\n", block)
}

func TestCodeEmitter(t *testing.T) {
	var buf bytes.Buffer
	e := NewCodeEmitter("Luden")
	require.NoError(t, e.EmitHeader(&buf, Header))
	require.NoError(t, e.EmitIncludes(&buf, []string{"a.h"}))
	require.NoError(t, e.EmitRegistrations(&buf, []string{"    B\n"}))
	assert.Equal(t, Header+"#include \"a.h\"\n\nnamespace Luden\n{\nRTTR_REGISTRATION\n{\n    B\n\n}\n} // namespace Luden\n", buf.String())

	buf.Reset()
	require.NoError(t, NewCodeEmitter("").EmitRegistrations(&buf, nil))
	assert.Equal(t, "RTTR_REGISTRATION\n{\n}\n", buf.String())
}

func TestIncludeManager(t *testing.T) {
	root := t.TempDir()
	im := NewIncludeManager(filepath.Join(root, "Engine", "src", "Generated"))

	b, err := im.Add(filepath.Join(root, "Engine", "include", "b.h"))
	require.NoError(t, err)
	assert.Equal(t, "../../include/b.h", b)
	_, err = im.Add(filepath.Join(root, "Engine", "include", "ECS", "a.h"))
	require.NoError(t, err)
	again, err := im.Add(filepath.Join(root, "Engine", "include", "b.h"))
	require.NoError(t, err)
	assert.Equal(t, b, again)

	assert.Equal(t, []string{"../../include/ECS/a.h", "../../include/b.h"}, im.GetAllIncludes())
}

func TestIncludeManager_RelativePaths(t *testing.T) {
	im := NewIncludeManager(filepath.FromSlash("Engine/src/Generated"))
	rel, err := im.Add(filepath.FromSlash("Engine/include/ECS/Components.h"))
	require.NoError(t, err)
	assert.Equal(t, "../../include/ECS/Components.h", rel)
}

func TestLineDiff(t *testing.T) {
	diff := LineDiff("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+B\n")
	assert.Contains(t, diff, "+d\n")
	assert.NotContains(t, diff, "a\n")
	assert.NotContains(t, diff, "c\n")
	assert.Empty(t, LineDiff("same\n", "same\n"))
}
