package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize_NegativeWidth(t *testing.T) {
	cfg := Default()
	cfg.Width = -1
	got := cfg.Normalize()
	require.Equal(t, UnboundedWidth, got.Width)
	require.Equal(t, -1, cfg.Width, "Normalize must not touch the receiver")
}

func TestNormalize_KeepsZeroWidth(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	require.Equal(t, 0, cfg.Normalize().Width)
}

func TestIsInstruction(t *testing.T) {
	raw := Default()
	norm := raw.Normalize()
	for _, tok := range []string{"add", "b", "bdnz+", "psq_lx", "stwcx.", "xoris"} {
		require.True(t, norm.IsInstruction(tok), tok)
		require.True(t, raw.IsInstruction(tok), "unnormalized lookup %s", tok)
	}
	for _, tok := range []string{".macro", "ADD", "loop:", ""} {
		require.False(t, norm.IsInstruction(tok), tok)
	}
}

func TestApplyToggles(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyToggles("-kpm+i-e"))
	require.False(t, cfg.KeywordBreaks)
	require.False(t, cfg.PrefixBreaks)
	require.False(t, cfg.InstructionBreaks)
	require.True(t, cfg.Indentation)
	require.Equal(t, TerminatorOff, cfg.TerminatorMode)

	require.NoError(t, cfg.ApplyToggles("+e"))
	require.Equal(t, TerminatorOutdent, cfg.TerminatorMode)

	cfg.TerminatorMode = TerminatorAlways
	require.NoError(t, cfg.ApplyToggles("+e"))
	require.Equal(t, TerminatorAlways, cfg.TerminatorMode, "+e keeps an explicit mode")

	require.Error(t, cfg.ApplyToggles("+x"))
}

func TestParseTerminatorMode(t *testing.T) {
	tests := []struct {
		in   string
		want TerminatorMode
	}{
		{"off", TerminatorOff},
		{"ALWAYS", TerminatorAlways},
		{" outdent ", TerminatorOutdent},
	}
	for _, tt := range tests {
		got, err := ParseTerminatorMode(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseTerminatorMode("sometimes")
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := Default().Normalize()
	b := Default().Normalize()
	fa, err := a.Fingerprint()
	require.NoError(t, err)
	fb, err := b.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, fa, fb)

	b.Width = 40
	fc, err := b.Fingerprint()
	require.NoError(t, err)
	require.NotEqual(t, fa, fc)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{".macro ", ".if", ".rept "}, SplitList(".macro , .if,, .rept "))
	require.Nil(t, SplitList(""))
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
[reflow]
width = 40
comma_ws = ""
semicolon_ws = " "
indent_ws = "    "
endline = "always"
outdent_prefixes = [".endm"]
extra_instructions = ["mycustom"]
toggles = "-k"

[files]
extensions = [".s", "inc"]
output_dir = "out"
jobs = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	proj, err := Load(path)
	require.NoError(t, err)
	cfg := proj.Reflow
	require.Equal(t, 40, cfg.Width)
	require.Equal(t, ",", cfg.CommaSep)
	require.Equal(t, "; ", cfg.SemicolonSep)
	require.Equal(t, "    ", cfg.IndentUnit)
	require.Equal(t, ",  ", cfg.ArgdefComma, "argdef untouched")
	require.Equal(t, TerminatorAlways, cfg.TerminatorMode)
	require.Equal(t, []string{".endm"}, cfg.IndentClose)
	require.Equal(t, Default().IndentOpen, cfg.IndentOpen)
	require.False(t, cfg.KeywordBreaks)
	require.True(t, cfg.IsInstruction("mycustom"))
	require.True(t, cfg.IsInstruction("add"))

	require.Equal(t, []string{"s", "inc"}, proj.Files.Extensions)
	require.Equal(t, filepath.Join(dir, "out"), proj.Files.OutputDir)
	require.Equal(t, 2, proj.Files.Jobs)
	require.Equal(t, DefaultFiles().ExcludePrefixes, proj.Files.ExcludePrefixes)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gasfmt.yaml")
	content := "reflow:\n  width: -1\n  indentation: false\nfiles:\n  nfc: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	proj, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, -1, proj.Reflow.Width)
	require.False(t, proj.Reflow.Indentation)
	require.True(t, proj.Files.NFC)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-endline.toml": "[reflow]\nendline = \"sometimes\"\n",
		"bad-toggle.toml":  "[reflow]\ntoggles = \"+z\"\n",
		"empty-ext.toml":   "[files]\nextensions = []\n",
		"neg-jobs.toml":    "[files]\njobs = -3\n",
		"broken.toml":      "[reflow\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := Load(path)
		require.Error(t, err, name)
	}
}

func TestLoadOrDefault_FindsParent(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("[reflow]\nwidth = 12\n"), 0o644))

	proj, err := LoadOrDefault("", nested)
	require.NoError(t, err)
	require.Equal(t, 12, proj.Reflow.Width)
	require.Equal(t, filepath.Join(root, FileName), proj.Path)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	proj, err := LoadOrDefault("", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default().Width, proj.Reflow.Width)
	require.Empty(t, proj.Path)
}

func TestMarshal_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	proj := &Project{Reflow: Default(), Files: DefaultFiles()}
	proj.Reflow.Width = 60
	proj.Reflow.SetWhitespace(nil, ptr(" "), ptr("\t"), nil)
	proj.Reflow.TerminatorMode = TerminatorAlways
	proj.Reflow.KeywordBreaks = false
	proj.Files.Jobs = 3

	for _, format := range []string{"toml", "yaml"} {
		data, err := proj.Marshal(format)
		require.NoError(t, err, format)
		path := filepath.Join(dir, "gasfmt."+format)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		back, err := Load(path)
		require.NoError(t, err, format)
		require.Equal(t, proj.Reflow, back.Reflow, format)
		require.Equal(t, proj.Files, back.Files, format)
	}
}
