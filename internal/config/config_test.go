package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./src/routes", cfg.Root)
	assert.Equal(t, []string{"**/*.svelte"}, cfg.Include)
	assert.Equal(t, []string{"**/node_modules/**", "**/.svelte-kit/**"}, cfg.Exclude)
	assert.Equal(t, "form_field_violations_report.txt", cfg.Report.Path)
	assert.Equal(t, ".inputfix/report.yaml", cfg.Report.DataPath)
	assert.Equal(t, ".", cfg.Console.ProjectRoot)
	assert.Equal(t, []string{"npm", "run", "lint"}, cfg.Console.LintCommand)
	assert.Equal(t, []string{"**/*.{ts,js,svelte}"}, cfg.Console.Include)
	assert.Equal(t, "import { logger } from '$lib/utils/logger';", cfg.Console.LoggerImport)
	assert.Equal(t, "$lib/utils/logger", cfg.Console.LoggerModule)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `root: ./app/routes
include:
  - "**/*.svelte"
  - "**/*.html"
report:
  path: reports/violations.txt
console:
  lint_command: ["pnpm", "lint"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".inputfix.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./app/routes", cfg.Root)
	assert.Equal(t, []string{"**/*.svelte", "**/*.html"}, cfg.Include)
	assert.Equal(t, "reports/violations.txt", cfg.Report.Path)
	assert.Equal(t, []string{"pnpm", "lint"}, cfg.Console.LintCommand)
	assert.Equal(t, ".inputfix/report.yaml", cfg.Report.DataPath)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INPUTFIX_ROOT", "./web")
	t.Setenv("INPUTFIX_REPORT_PATH", "out.txt")
	t.Setenv("INPUTFIX_LOG_LEVEL", "error")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./web", cfg.Root)
	assert.Equal(t, "out.txt", cfg.Report.Path)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Root:    "./src",
			Include: []string{"**/*.svelte"},
			Report:  ReportConfig{Path: "report.txt"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty root", mutate: func(c *Config) { c.Root = "" }, wantErr: "root"},
		{name: "no include", mutate: func(c *Config) { c.Include = nil }, wantErr: "include"},
		{name: "bad exclude glob", mutate: func(c *Config) { c.Exclude = []string{"[oops"} }, wantErr: "invalid glob"},
		{name: "bad console glob", mutate: func(c *Config) { c.Console.Include = []string{"{a,b"} }, wantErr: "invalid glob"},
		{name: "empty report path", mutate: func(c *Config) { c.Report.Path = "" }, wantErr: "report.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
