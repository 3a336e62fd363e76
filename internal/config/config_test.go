package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naum/internal/compare"
	"naum/internal/match"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "external", cfg.Compare.Audience)
	assert.True(t, cfg.Compare.RenameHints)
	assert.True(t, cfg.Report.FailOnBreaking)
	assert.Equal(t, ColorAuto, cfg.Report.Color)
	assert.Empty(t, cfg.Path)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[compare]
audience = "internal"
jobs = 3
load_bearing_annotations = ["javax/inject/Inject", "com.example.Api"]
unchecked_exceptions = ["com/example/FatalError"]
rename_hints = false

[report]
fail_on_breaking = false
color = "never"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "internal", cfg.Compare.Audience)
	assert.Equal(t, 3, cfg.Compare.Jobs)
	assert.Equal(t, []string{"javax.inject.Inject", "com.example.Api"}, cfg.Compare.LoadBearingAnnotations)
	assert.Equal(t, []string{"com.example.FatalError"}, cfg.Compare.UncheckedExceptions)
	assert.False(t, cfg.Compare.RenameHints)
	assert.Equal(t, match.DefaultMinScore, cfg.Compare.MinRenameScore, "unset keys keep defaults")
	assert.False(t, cfg.Report.FailOnBreaking)
	assert.Equal(t, ColorNever, cfg.Report.Color)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "[report]\ncolor = \"always\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "external", cfg.Compare.Audience)
	assert.True(t, cfg.Report.FailOnBreaking)
	assert.Equal(t, ColorAlways, cfg.Report.Color)
}

func TestLoad_Errors(t *testing.T) {
	tests := map[string]struct {
		content string
		want    string
	}{
		"syntax":        {content: "[compare\n", want: "parse error"},
		"unknown key":   {content: "[compare]\nfoo = 1\n", want: "unknown keys: compare.foo"},
		"audience":      {content: "[compare]\naudience = \"everyone\"\n", want: `unknown audience "everyone"`},
		"negative jobs": {content: "[compare]\njobs = -1\n", want: "jobs must not be negative"},
		"score range":   {content: "[compare]\nmin_rename_score = 1.5\n", want: "min_rename_score"},
		"color":         {content: "[report]\ncolor = \"rainbow\"\n", want: `unknown color mode "rainbow"`},
		"wrong type":    {content: "[compare]\njobs = \"many\"\n", want: "parse error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.ErrorContains(t, err, "cannot read")
}

func TestFindAndLoad_WalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "[compare]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := FindAndLoad(nested)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 2, cfg.Compare.Jobs)
}

func TestFindAndLoad_NoFile(t *testing.T) {
	cfg, err := FindAndLoad(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCompareConfig(t *testing.T) {
	cfg := Default()
	cfg.Compare.Audience = "internal"
	cfg.Compare.Jobs = 4
	cfg.Compare.LoadBearingAnnotations = []string{"com.example.Api"}
	cfg.Compare.UncheckedExceptions = []string{"com.example.FatalError", "java.lang.RuntimeException"}

	cc, err := cfg.CompareConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 4, cc.Jobs)
	assert.Equal(t, compare.DefaultPolicy{Audience: compare.AudienceInternal, LoadBearing: []string{"com.example.Api"}}, cc.Policy)
	assert.Contains(t, cc.UncheckedExceptions, "com.example.FatalError")
	assert.Len(t, cc.UncheckedExceptions, len(compare.DefaultUncheckedExceptions)+1, "duplicates are dropped")
	assert.True(t, cc.RenameHints)

	cfg.Compare.Audience = "nobody"
	_, err = cfg.CompareConfig(nil)
	assert.Error(t, err)
}
