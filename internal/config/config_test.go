package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/csvpeek-go/pkg/csvpeek/render"
)

// isolate runs the test in an empty directory with no CSVPEEK_* variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, name := range []string{
		"CSVPEEK_CONFIG", "CSVPEEK_PREVIEW_LIMIT", "CSVPEEK_PREVIEW_ALIGN",
		"CSVPEEK_PREVIEW_MISSING_TOKEN", "CSVPEEK_PREVIEW_MAX_COL_WIDTH",
		"CSVPEEK_PREVIEW_SHOW_INDEX", "CSVPEEK_PARSE_DELIMITER", "CSVPEEK_PARSE_SNIFF",
		"CSVPEEK_PARSE_NO_HEADER", "CSVPEEK_PARSE_KEEP_BLANK_LINES",
		"CSVPEEK_PARSE_MISSING_TOKENS", "CSVPEEK_PARSE_SHEET",
		"CSVPEEK_LOGGING_LEVEL", "CSVPEEK_LOGGING_FORMAT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(t *testing.T)
		fileContent string
		wantErr     bool
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no file and no env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 5, cfg.Preview.Limit)
				assert.Equal(t, "right", cfg.Preview.Align)
				assert.Equal(t, "NaN", cfg.Preview.MissingToken)
				assert.Equal(t, 0, cfg.Preview.MaxColWidth)
				assert.Equal(t, "warn", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Empty(t, cfg.Parse.Delimiter)
			},
		},
		{
			name: "file overrides defaults",
			fileContent: `
preview:
  limit: 20
  align: left
parse:
  delimiter: ";"
  missing_tokens: ["-", "?"]
`,
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 20, cfg.Preview.Limit)
				assert.Equal(t, "left", cfg.Preview.Align)
				assert.Equal(t, "NaN", cfg.Preview.MissingToken)
				assert.Equal(t, ";", cfg.Parse.Delimiter)
				assert.Equal(t, []string{"-", "?"}, cfg.Parse.MissingTokens)
			},
		},
		{
			name: "env overrides file",
			setupEnv: func(t *testing.T) {
				t.Setenv("CSVPEEK_PREVIEW_LIMIT", "3")
				t.Setenv("CSVPEEK_PARSE_MISSING_TOKENS", "x,y")
				t.Setenv("CSVPEEK_LOGGING_FORMAT", "json")
			},
			fileContent: "preview:\n  limit: 20\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Preview.Limit)
				assert.Equal(t, []string{"x", "y"}, cfg.Parse.MissingTokens)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "enumerated values are case-insensitive",
			setupEnv: func(t *testing.T) {
				t.Setenv("CSVPEEK_PREVIEW_ALIGN", "Left")
				t.Setenv("CSVPEEK_LOGGING_LEVEL", "DEBUG")
			},
			fileContent: "logging:\n  format: JSON\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "left", cfg.Preview.Align)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name:        "invalid alignment",
			fileContent: "preview:\n  align: center\n",
			wantErr:     true,
		},
		{
			name:        "negative limit",
			fileContent: "preview:\n  limit: -1\n",
			wantErr:     true,
		},
		{
			name:        "invalid delimiter",
			fileContent: "parse:\n  delimiter: ab\n",
			wantErr:     true,
		},
		{
			name:        "malformed yaml",
			fileContent: "preview: [\n",
			wantErr:     true,
		},
		{
			name: "invalid env value",
			setupEnv: func(t *testing.T) {
				t.Setenv("CSVPEEK_PREVIEW_LIMIT", "many")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.setupEnv != nil {
				tt.setupEnv(t)
			}
			if tt.fileContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(tt.fileContent), 0644))
			}

			cfg, err := Load("")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview:\n  show_index: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Preview.ShowIndex)

	t.Setenv("CSVPEEK_CONFIG", path)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Preview.ShowIndex)
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input    string
		expected rune
		wantErr  bool
	}{
		{"", 0, false},
		{",", ',', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"Semicolon", ';', false},
		{"pipe", '|', false},
		{"comma", ',', false},
		{"\t", '\t', false},
		{`"`, 0, true},
		{"ab", 0, true},
		{"é", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestConvertOptions(t *testing.T) {
	cfg := Default()
	cfg.Parse.Delimiter = "pipe"
	cfg.Parse.KeepBlankLines = true
	cfg.Parse.Sheet = "Data"
	cfg.Preview.Align = "left"
	cfg.Preview.Limit = 9

	opts, err := cfg.ParseOptions()
	require.NoError(t, err)
	assert.Equal(t, '|', opts.Delimiter)
	assert.False(t, opts.ShouldSkipBlankLines())
	assert.Equal(t, "Data", opts.Sheet)

	previewOpts, err := cfg.PreviewOptions()
	require.NoError(t, err)
	assert.Equal(t, render.AlignLeft, previewOpts.Align)
	assert.Equal(t, 9, previewOpts.Limit)
	assert.Equal(t, "NaN", previewOpts.MissingToken)
}
