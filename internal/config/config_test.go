package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.ATS.MaxLineLength)
	assert.Equal(t, "•", cfg.ATS.BulletStyle)
	assert.Equal(t, "Letter", cfg.PDF.PageSize)
	assert.Equal(t, []string{"html", "pdf", "docx"}, cfg.Output.Formats)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"ats": {"max_line_length": 100},
		"output": {"formats": ["html"]}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden values win.
	assert.Equal(t, 100, cfg.ATS.MaxLineLength)
	assert.Equal(t, []string{"html"}, cfg.Output.Formats)

	// Everything the file left unset keeps its default.
	assert.Equal(t, "•", cfg.ATS.BulletStyle)
	assert.Equal(t, "professional", cfg.HTML.Theme)
	assert.Equal(t, 0.75, cfg.PDF.MarginTop)
}

func TestLoad_ExplicitFalseSurvivesMerge(t *testing.T) {
	path := writeConfig(t, `{"ats": {"remove_special_chars": false}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.ATS.RemoveSpecialChars)
	assert.False(t, *cfg.ATS.RemoveSpecialChars)
	// The other boolean keeps its default.
	require.NotNil(t, cfg.ATS.OptimizeKeywords)
	assert.True(t, *cfg.ATS.OptimizeKeywords)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	path := writeConfig(t, `{"ats": {"max_line_length": 5}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, `{"output": {"formats": ["rtf"]}}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestATSConfig_ResolvesPointers(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	atsCfg := cfg.ATSConfig()
	assert.Equal(t, 80, atsCfg.MaxLineLength)
	assert.True(t, atsCfg.RemoveSpecialChars)
	assert.True(t, atsCfg.OptimizeKeywords)
}

func TestWriteSample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, WriteSample(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().ATS.MaxLineLength, cfg.ATS.MaxLineLength)
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}
