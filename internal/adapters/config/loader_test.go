package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libscan/internal/adapters/config"
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	l, err := config.NewLoader(log)
	require.NoError(t, err)
	return l, log
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
version: "1"
appsDir: corpus
outputDir: out
maxDepth: 64
onDepthExceeded: skip-app
statsFile: report.txt
nativePatterns: ['^lib(.+)\.so$']
categories:
  - name: visual
    apps: visual-apps.txt
    imports: [visual-flakes-imports.txt, visual-flakes-imports-py2.txt]
    unused: [visual-flakes-unused.txt]
    libs:
      sens: visual-sensor-libs.txt
      net: visual-net-libs.txt
`)

	loader, _ := newLoader(t)
	c, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "corpus"), c.AppsDir)
	assert.Equal(t, filepath.Join(tmpDir, "out"), c.OutputDir)
	assert.Equal(t, filepath.Join(tmpDir, "report.txt"), c.StatsFile)
	assert.Equal(t, 64, c.MaxDepth)
	assert.Equal(t, domain.DepthSkipApp, c.OnDepthExceeded)
	assert.Equal(t, []string{`^lib(.+)\.so$`}, c.NativePatterns)

	require.Len(t, c.Categories, 1)
	cat := c.Categories[0]
	assert.Equal(t, "visual", cat.Name)
	assert.Equal(t, filepath.Join(tmpDir, "visual-apps.txt"), cat.AppsList)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "visual-flakes-imports.txt"),
		filepath.Join(tmpDir, "visual-flakes-imports-py2.txt"),
	}, cat.Imports)
	assert.Equal(t, []string{filepath.Join(tmpDir, "visual-flakes-unused.txt")}, cat.Unused)
	assert.Equal(t, map[domain.Role]string{
		domain.RoleSensor:     filepath.Join(tmpDir, "visual-sensor-libs.txt"),
		domain.RoleNetworking: filepath.Join(tmpDir, "visual-net-libs.txt"),
	}, cat.Libs)
}

func TestLoad_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
categories:
  - name: audio
`)

	loader, _ := newLoader(t)
	c, err := loader.Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, domain.DefaultAppsDir), c.AppsDir)
	assert.Equal(t, tmpDir, c.OutputDir)
	assert.Equal(t, filepath.Join(tmpDir, domain.DefaultStatsFile), c.StatsFile)
	assert.Equal(t, domain.DefaultMaxDepth, c.MaxDepth)
	assert.Equal(t, domain.DepthAbort, c.OnDepthExceeded)
	assert.Equal(t, domain.DefaultNativePatterns, c.NativePatterns)
	assert.Equal(t, filepath.Join(tmpDir, "audio-apps.txt"), c.Categories[0].AppsList)
	assert.Empty(t, c.Categories[0].Imports)
}

func TestLoad_DiscoversParentConfig(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
categories:
  - name: env
    imports: [env-flakes-imports.txt]
`)
	sub := filepath.Join(tmpDir, "apps", "env")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	loader, _ := newLoader(t)
	c, err := loader.Load(sub)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(tmpDir, "env-flakes-imports.txt")}, c.Categories[0].Imports)
}

func TestLoad_NoConfigUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	loader, log := newLoader(t)
	log.EXPECT().Info(gomock.Any())

	c, err := loader.Load(tmpDir)
	require.NoError(t, err)

	require.Len(t, c.Categories, 3)
	assert.Equal(t, "visual", c.Categories[0].Name)
	assert.Equal(t, filepath.Join(tmpDir, "visual-apps.txt"), c.Categories[0].AppsList)
	assert.Equal(t, filepath.Join(tmpDir, "env-net-libs.txt"), c.Categories[2].Libs[domain.RoleNetworking])
	assert.Equal(t, filepath.Join(tmpDir, domain.DefaultAppsDir), c.AppsDir)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "invalid yaml",
			content: "categories: [",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "no categories",
			content: `version: "1"`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "Categories",
		},
		{
			name: "unsupported version",
			content: `
version: "2"
categories: [{name: visual}]
`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "Version",
		},
		{
			name: "duplicate category",
			content: `
categories: [{name: visual}, {name: visual}]
`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "unique",
		},
		{
			name: "category name with a slash",
			content: `
categories: [{name: a/b}]
`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "excludesall",
		},
		{
			name: "native pattern does not compile",
			content: `
nativePatterns: ['^lib(.+\.so$']
categories: [{name: visual}]
`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "regexp",
		},
		{
			name: "negative depth",
			content: `
maxDepth: -1
categories: [{name: visual}]
`,
			wantErr: domain.ErrConfigInvalid,
			wantMsg: "MaxDepth",
		},
		{
			name: "unknown depth policy",
			content: `
onDepthExceeded: ignore
categories: [{name: visual}]
`,
			wantErr: domain.ErrInvalidDepthPolicy,
		},
		{
			name: "unknown role",
			content: `
categories:
  - name: visual
    libs: {storage: visual-storage-libs.txt}
`,
			wantErr: domain.ErrUnknownRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := writeConfig(t, tmpDir, tt.content)

			loader, _ := newLoader(t)
			_, err := loader.LoadFile(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	loader, _ := newLoader(t)
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), domain.ConfigFileName))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestRegisterValidations_Error(t *testing.T) {
	err := config.RegisterValidations(validator.New(), map[string]validator.Func{
		"": func(validator.FieldLevel) bool { return true },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register validation")
}
