package raft

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/zisake/MeiliSearch/raft/proto"
	"github.com/zisake/MeiliSearch/utils/pd"
)

// Router maps peer ids to their connections and implements the
// Transporter contract. Lookups and distinct-key inserts run
// concurrently; calls to one peer are serialized by that peer's
// client while calls to different peers proceed in parallel.
//
// There is no failed state: an entry is either absent or connected,
// and a failed RPC never demotes or removes it. The consensus engine
// owns retry and backoff policy.
type Router struct {
	clients sync.Map // uint64 -> *client
}

// NewRouter return an empty Router.
func NewRouter() *Router {
	return &Router{}
}

var _ Transporter = (*Router)(nil)

// AddPeer dials addr and registers the connection under id. The first
// writer wins: if id is already registered the dial is skipped and
// the existing entry, including its address, is kept untouched.
// A dial failure registers nothing, so AddPeer can be retried.
func (r *Router) AddPeer(ctx context.Context, id uint64, addr string) error {
	if entry, ok := r.clients.Load(id); ok {
		if prev := entry.(*client).addr; prev != addr {
			log.Debugf("peer %d already registered at %s, ignore %s", id, prev, addr)
		}
		return nil
	}

	c, err := dial(ctx, addr)
	if err != nil {
		return &ConnectError{Peer: id, Addr: addr, Err: err}
	}

	// A concurrent AddPeer may have won the race while we dialed;
	// keep its entry and discard ours.
	if _, loaded := r.clients.LoadOrStore(id, c); loaded {
		if err := c.close(); err != nil {
			log.Warnf("close duplicate connection to peer %d: %v", id, err)
		}
	}
	return nil
}

// Peers lists the registered peer ids and the addresses their
// connections were dialed with.
func (r *Router) Peers() map[uint64]string {
	peers := make(map[uint64]string)
	r.clients.Range(func(key, value interface{}) bool {
		peers[key.(uint64)] = value.(*client).addr
		return true
	})
	return peers
}

func (r *Router) lookup(target uint64) (*client, error) {
	entry, ok := r.clients.Load(target)
	if !ok {
		return nil, &UnknownPeerError{Peer: target}
	}
	return entry.(*client), nil
}

// AppendEntries sends req to target and returns its decoded answer.
func (r *Router) AppendEntries(ctx context.Context, target uint64, req *raftpd.AppendEntriesRequest) (*raftpd.AppendEntriesResponse, error) {
	c, err := r.lookup(target)
	if err != nil {
		return nil, err
	}

	payload, err := pd.Marshal(req)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	data, err := c.appendEntries(ctx, payload)
	if err != nil {
		return nil, &RPCError{Peer: target, Err: err}
	}

	resp := &raftpd.AppendEntriesResponse{}
	if err := pd.Unmarshal(resp, data); err != nil {
		return nil, &DecodeError{Peer: target, Err: err}
	}
	return resp, nil
}

// InstallSnapshot sends req to target and returns its decoded answer.
func (r *Router) InstallSnapshot(ctx context.Context, target uint64, req *raftpd.InstallSnapshotRequest) (*raftpd.InstallSnapshotResponse, error) {
	c, err := r.lookup(target)
	if err != nil {
		return nil, err
	}

	payload, err := pd.Marshal(req)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	data, err := c.installSnapshot(ctx, payload)
	if err != nil {
		return nil, &RPCError{Peer: target, Err: err}
	}

	resp := &raftpd.InstallSnapshotResponse{}
	if err := pd.Unmarshal(resp, data); err != nil {
		return nil, &DecodeError{Peer: target, Err: err}
	}
	return resp, nil
}

// Vote sends req to target and returns its decoded answer. A denied
// vote is a successful round trip, not an error.
func (r *Router) Vote(ctx context.Context, target uint64, req *raftpd.VoteRequest) (*raftpd.VoteResponse, error) {
	c, err := r.lookup(target)
	if err != nil {
		return nil, err
	}

	payload, err := pd.Marshal(req)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	data, err := c.vote(ctx, payload)
	if err != nil {
		log.Errorf("error connecting to peer %d: %v", target, err)
		return nil, &RPCError{Peer: target, Err: err}
	}

	resp := &raftpd.VoteResponse{}
	if err := pd.Unmarshal(resp, data); err != nil {
		return nil, &DecodeError{Peer: target, Err: err}
	}
	return resp, nil
}

// ForwardWrite relays a client write to target, normally the leader.
func (r *Router) ForwardWrite(ctx context.Context, target uint64, req *raftpd.ClientWriteRequest) (*raftpd.ClientWriteResponse, error) {
	c, err := r.lookup(target)
	if err != nil {
		return nil, err
	}

	payload, err := pd.Marshal(req)
	if err != nil {
		return nil, &EncodeError{Err: err}
	}

	data, err := c.forward(ctx, payload)
	if err != nil {
		return nil, &RPCError{Peer: target, Err: err}
	}

	resp := &raftpd.ClientWriteResponse{}
	if err := pd.Unmarshal(resp, data); err != nil {
		return nil, &DecodeError{Peer: target, Err: err}
	}
	return resp, nil
}
