package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libscan/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libscan/internal/adapters/listing"  //nolint:depguard // Wired in app layer
	"go.trai.ch/libscan/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libscan/internal/adapters/pysource" //nolint:depguard // Wired in app layer
	"go.trai.ch/libscan/internal/adapters/report"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libscan/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			listing.NodeID,
			pysource.NodeID,
			report.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	listings, err := graft.Dep[ports.ListingStore](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceTree](ctx)
	if err != nil {
		return nil, err
	}

	statsWriter, err := graft.Dep[ports.StatsWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, listings, sources, statsWriter, log), nil
}
