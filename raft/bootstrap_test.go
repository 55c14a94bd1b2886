package raft_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zisake/MeiliSearch/config"
	"github.com/zisake/MeiliSearch/raft"
	"github.com/zisake/MeiliSearch/raft/proto"
)

func TestBootstrapRouter(t *testing.T) {
	ctx := testContext(t)
	first := startServer(t, &engine{grant: true})
	second := startServer(t, &engine{grant: true})

	cfg := &config.Config{
		ID:          1,
		ListenAddr:  "127.0.0.1:0",
		DialTimeout: 2 * time.Second,
		Peers: []config.Peer{
			{ID: 2, Addr: first},
			{ID: 3, Addr: second},
		},
	}
	require.NoError(t, cfg.Validate())

	router, err := raft.BootstrapRouter(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, map[uint64]string{2: first, 3: second}, router.Peers())

	resp, err := router.Vote(ctx, 2, &raftpd.VoteRequest{Term: 1, CandidateID: 1})
	require.NoError(t, err)
	assert.True(t, resp.VoteGranted)
}

func TestBootstrapRouterUnreachablePeer(t *testing.T) {
	first := startServer(t, &engine{})

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	closed := lis.Addr().String()
	require.NoError(t, lis.Close())

	cfg := &config.Config{
		ID:          1,
		ListenAddr:  "127.0.0.1:0",
		DialTimeout: time.Second,
		Peers: []config.Peer{
			{ID: 2, Addr: first},
			{ID: 3, Addr: closed},
		},
	}

	router, err := raft.BootstrapRouter(context.Background(), cfg)
	var connect *raft.ConnectError
	require.ErrorAs(t, err, &connect)
	assert.Equal(t, uint64(3), connect.Peer)

	// The reachable peer made it in before the failure.
	assert.Equal(t, map[uint64]string{2: first}, router.Peers())
}
