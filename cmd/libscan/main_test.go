package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libscan/internal/app"
	"go.trai.ch/libscan/internal/core/domain"
	"go.trai.ch/libscan/internal/core/ports"
	"go.trai.ch/libscan/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader   *mocks.MockConfigLoader
	listings *mocks.MockListingStore
	sources  *mocks.MockSourceTree
	writer   *mocks.MockStatsWriter
}

func newApp(ctrl *gomock.Controller, log *mocks.MockLogger) (*app.App, *appMocks) {
	m := &appMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		listings: mocks.NewMockListingStore(ctrl),
		sources:  mocks.NewMockSourceTree(ctrl),
		writer:   mocks.NewMockStatsWriter(ctrl),
	}
	return app.New(m.loader, m.listings, m.sources, m.writer, log), m
}

func providerFor(a *app.App, log ports.Logger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application, _ := newApp(ctrl, mockLogger)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, providerFor(application, mockLogger))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application, m := newApp(ctrl, mockLogger)

	m.loader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"scrape", "visual"}, stderr, providerFor(application, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_DepthExceeded verifies that an aborted substitution maps to exit code 2.
func TestRun_DepthExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application, m := newApp(ctrl, mockLogger)

	corpus := domain.DefaultCorpus()
	corpus.MaxDepth = 1
	m.loader.EXPECT().Load(".").Return(corpus, nil)
	m.sources.EXPECT().ListApps("apps/visual").Return([]string{"apps/visual/cam"}, nil)
	m.listings.EXPECT().ReadMap("visual-flakes-imports.txt").Return(domain.ImportMap{
		"apps/visual/cam/a.py": {"b"},
		"apps/visual/cam/b.py": {"c"},
		"apps/visual/cam/c.py": {"numpy"},
	}, nil)
	m.listings.EXPECT().ReadMap(gomock.Any()).Return(domain.ImportMap{}, nil).Times(3)

	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	var logged error
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"scrape", "visual"}, stderr, providerFor(application, mockLogger))

	assert.Equal(t, 2, exitCode)
	require.Error(t, logged)
	assert.ErrorIs(t, logged, domain.ErrDepthExceeded)
}

type switchingLogger struct {
	json bool
	errs []error
}

func (l *switchingLogger) Info(string)         {}
func (l *switchingLogger) Warn(error)          {}
func (l *switchingLogger) Error(err error)     { l.errs = append(l.errs, err) }
func (l *switchingLogger) SetJSON(enable bool) { l.json = enable }

// TestRun_JSONLogs verifies that --json-logs switches the logger before the command runs.
func TestRun_JSONLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &switchingLogger{}
	application, _ := newApp(ctrl, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--json-logs", "version"}, stderr, providerFor(application, log))

	assert.Equal(t, 0, exitCode)
	assert.True(t, log.json)
	assert.Empty(t, log.errs)
}
