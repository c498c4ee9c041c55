package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/stylecheck/pkg/core"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"TEXT", ModeText, false},
		{"md", ModeMarkdown, false},
		{"markdown", ModeMarkdown, false},
		{"json", ModeJSON, false},
		{" yaml ", ModeYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRenderer(&out, &errOut, "").EffectiveMode(), "a buffer is not a terminal")
}

func TestRenderer_StreamsAndPlainStyles(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeText)

	r.Println("hello")
	r.Printf("%d rules\n", 15)
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "hello\n15 rules\n", out.String())
	assert.Equal(t, "warning: careful\nerror: broken\n", errOut.String())
	assert.Equal(t, "x", r.Styles().Severity(core.SeverityError).Render("x"))
}

func TestRenderer_Success(t *testing.T) {
	var out bytes.Buffer
	NewRendererWithTTY(&out, &out, false, ModeMarkdown).Success("done")
	assert.Equal(t, "**done**\n", out.String())

	out.Reset()
	NewRendererWithTTY(&out, &out, false, ModeText).Success("done")
	assert.Equal(t, "✓ done\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeMarkdown)
	r.Table([]string{"Rule", "Count"}, [][]string{{"todo", "2"}, {"colon", "1"}})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Rule")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "todo")

	out.Reset()
	NewRendererWithTTY(&out, &out, true, ModeText).Table([]string{"Rule"}, [][]string{{"todo"}})
	assert.Contains(t, out.String(), "┌")
	assert.Contains(t, out.String(), "todo")
}

func TestRenderer_Encoders(t *testing.T) {
	payload := map[string]any{"severity": core.SeverityWarning, "count": 2}

	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeJSON)
	require.NoError(t, r.JSON(payload))
	assert.Contains(t, out.String(), `"severity": "warning"`)

	out.Reset()
	require.NoError(t, r.YAML(payload))
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "warning", decoded["severity"])
	assert.Equal(t, 2, decoded["count"])
}
