package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const versionIn = `#ifndef RTTR_VERSION_H_
#define RTTR_VERSION_H_

#define RTTR_VERSION_MAJOR @RTTR_VERSION_MAJOR@
#define RTTR_VERSION_MINOR @RTTR_VERSION_MINOR@
#define RTTR_VERSION_PATCH @RTTR_VERSION_PATCH@
#define RTTR_VERSION_STR "@RTTR_VERSION_MAJOR@.@RTTR_VERSION_MINOR@.@RTTR_VERSION_PATCH@"
#define RTTR_EMAIL "someone@example.com"

#endif
`

func TestText_Substitute(t *testing.T) {
	out := (&Text{Content: versionIn}).Substitute(DefaultVersionValues())
	assert.Contains(t, out.Content, "#define RTTR_VERSION_MAJOR 0\n")
	assert.Contains(t, out.Content, "#define RTTR_VERSION_MINOR 9\n")
	assert.Contains(t, out.Content, "#define RTTR_VERSION_PATCH 6\n")
	assert.Contains(t, out.Content, `"0.9.6"`)
	assert.Contains(t, out.Content, "someone@example.com")
	assert.NotContains(t, out.Content, "@RTTR_")
}

func TestText_SubstituteKeyForms(t *testing.T) {
	in := &Text{Content: "@A@-@B@-@C@"}
	out := in.Substitute(map[string]string{"A": "1", "@B@": "2"})
	assert.Equal(t, "1-2-@C@", out.Content)
	assert.Equal(t, "@A@-@B@-@C@", in.Content, "source must not change")
}

func TestText_SubstituteIsIdentityWithoutPlaceholders(t *testing.T) {
	content := "no placeholders here\r\n\tä @ @@ \x00"
	out := (&Text{Content: content}).Substitute(DefaultVersionValues())
	assert.Equal(t, content, out.Content)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "version.h.in"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Contains(t, err.Error(), "version.h.in")
}

func TestText_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "version.h.in")
	out := filepath.Join(dir, "nested", "detail", "version.h")
	require.NoError(t, os.WriteFile(in, []byte(versionIn), 0o644))

	tpl, err := LoadFile(in)
	require.NoError(t, err)
	require.NoError(t, tpl.Substitute(DefaultVersionValues()).SaveFile(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#define RTTR_VERSION_PATCH 6")
}

func TestParseAssignments(t *testing.T) {
	values, err := ParseAssignments([]string{"RTTR_VERSION_MAJOR=1", "@X@=a=b", "EMPTY="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"RTTR_VERSION_MAJOR": "1", "@X@": "a=b", "EMPTY": ""}, values)

	_, err = ParseAssignments([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseAssignments([]string{"=1"})
	assert.Error(t, err)
}

func TestManager_RenderBlock(t *testing.T) {
	out, err := NewManager().Render(BlockName, Block{
		QualifiedName: "Luden::Position",
		Name:          "Position",
		Constructors:  []string{"float, float", ""},
		Properties: []BlockProperty{
			{Name: "x"},
			{Name: "y", Args: []string{`metadata("default", "0.0f")`, "registration::private_access"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `    registration::class_<Luden::Position>("Position")
        .constructor<float, float>()
        .constructor<>()
        .property("x", &Luden::Position::x)
        .property("y", &Luden::Position::y, metadata("default", "0.0f"), registration::private_access)
    ;
`, string(out))
}

func TestManager_RenderUnknown(t *testing.T) {
	_, err := NewManager().Render("missing", nil)
	assert.Error(t, err)
}
