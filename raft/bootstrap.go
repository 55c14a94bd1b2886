package raft

import (
	"context"

	"github.com/zisake/MeiliSearch/config"
)

// BootstrapRouter builds a Router with every peer of cfg registered,
// bounding each dial by cfg.DialTimeout. The first unreachable peer
// aborts the bootstrap; peers added before it stay registered on the
// returned router, so the caller may still retry the rest.
func BootstrapRouter(ctx context.Context, cfg *config.Config) (*Router, error) {
	router := NewRouter()
	for _, peer := range cfg.Peers {
		dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
		err := router.AddPeer(dialCtx, peer.ID, peer.Addr)
		cancel()
		if err != nil {
			return router, err
		}
	}
	return router, nil
}
