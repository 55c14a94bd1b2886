package raft

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/zisake/MeiliSearch/raft/service"
)

// client owns the single RPC channel to one peer. The mutex admits
// one in-flight call at a time: raft never needs two outstanding
// RPCs to the same peer, and serializing here keeps wire order equal
// to lock-acquisition order.
type client struct {
	mutex sync.Mutex

	rpc  raftservice.RaftServiceClient
	conn *grpc.ClientConn
	addr string // kept for diagnostics
}

// dial establishes the RPC channel to addr, blocking until the
// connection is ready or ctx expires. A refused or unresolvable
// address fails here, at dial time, not on the first call.
func dial(ctx context.Context, addr string) (*client, error) {
	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
		grpc.FailOnNonTempDialError(true))
	if err != nil {
		return nil, err
	}
	return &client{
		rpc:  raftservice.NewRaftServiceClient(conn),
		conn: conn,
		addr: addr,
	}, nil
}

// The four call operations are identical wrappers differing only in
// the RPC method: one round trip, no retry, and a failure leaves the
// client as it was.

func (c *client) appendEntries(ctx context.Context, payload []byte) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	resp, err := c.rpc.AppendEntries(ctx, &raftservice.AppendEntriesRequest{Data: payload})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *client) installSnapshot(ctx context.Context, payload []byte) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	resp, err := c.rpc.InstallSnapshot(ctx, &raftservice.InstallSnapshotRequest{Data: payload})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *client) vote(ctx context.Context, payload []byte) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	resp, err := c.rpc.Vote(ctx, &raftservice.VoteRequest{Data: payload})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *client) forward(ctx context.Context, payload []byte) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	resp, err := c.rpc.Forward(ctx, &raftservice.ClientWriteRequest{Data: payload})
	if err != nil {
		return nil, err
	}
	return resp.GetData(), nil
}

func (c *client) close() error {
	return c.conn.Close()
}
