package ports

import "go.trai.ch/libscan/internal/core/domain"

// StatsWriter persists the aggregate statistics report.
//
//go:generate go run go.uber.org/mock/mockgen -source=stats_writer.go -destination=mocks/mock_stats_writer.go -package=mocks
type StatsWriter interface {
	// WriteStats writes the report to path, replacing any previous report.
	WriteStats(path string, report *domain.StatsReport) error
}
