package ports

import "go.trai.ch/libscan/internal/core/domain"

// ListingStore reads and writes the flat-text listings exchanged with the rest of the toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=listing.go -destination=mocks/mock_listing.go -package=mocks
type ListingStore interface {
	// ReadMap reads a "key: v1, v2" listing.
	ReadMap(path string) (domain.ImportMap, error)

	// ReadList reads a listing with one value per line.
	ReadList(path string) ([]string, error)

	// WriteMap writes the records in the given order, one per line.
	WriteMap(path string, records []domain.Record) error
}
