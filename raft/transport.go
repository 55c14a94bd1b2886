package raft

import (
	"context"

	"github.com/zisake/MeiliSearch/raft/proto"
)

// Transporter is the network contract the consensus engine calls
// against. Implementations do not retry and do not decide when to
// call a peer; both belong to the engine.
type Transporter interface {
	// AddPeer registers target's RPC endpoint and dials it. Adding an
	// already known peer is a no-op, whatever the address.
	AddPeer(ctx context.Context, id uint64, addr string) error

	AppendEntries(ctx context.Context, target uint64, req *raftpd.AppendEntriesRequest) (*raftpd.AppendEntriesResponse, error)
	InstallSnapshot(ctx context.Context, target uint64, req *raftpd.InstallSnapshotRequest) (*raftpd.InstallSnapshotResponse, error)
	Vote(ctx context.Context, target uint64, req *raftpd.VoteRequest) (*raftpd.VoteResponse, error)

	// ForwardWrite relays a client write to target, used when the
	// local node is not the leader.
	ForwardWrite(ctx context.Context, target uint64, req *raftpd.ClientWriteRequest) (*raftpd.ClientWriteResponse, error)
}

// Handler is the inbound half of the same boundary: the consensus
// engine's processing of RPCs arriving from peers. Server decodes
// wire envelopes and dispatches to it.
type Handler interface {
	AppendEntries(ctx context.Context, req *raftpd.AppendEntriesRequest) (*raftpd.AppendEntriesResponse, error)
	InstallSnapshot(ctx context.Context, req *raftpd.InstallSnapshotRequest) (*raftpd.InstallSnapshotResponse, error)
	Vote(ctx context.Context, req *raftpd.VoteRequest) (*raftpd.VoteResponse, error)
	ForwardWrite(ctx context.Context, req *raftpd.ClientWriteRequest) (*raftpd.ClientWriteResponse, error)
}
