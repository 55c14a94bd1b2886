package raft_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/zisake/MeiliSearch/raft/proto"
	"github.com/zisake/MeiliSearch/raft/service"
	"github.com/zisake/MeiliSearch/utils/pd"
)

func rawClient(t *testing.T, addr string) raftservice.RaftServiceClient {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return raftservice.NewRaftServiceClient(conn)
}

func TestServerDispatchesToHandler(t *testing.T) {
	ctx := testContext(t)
	addr := startServer(t, &engine{grant: true})
	client := rawClient(t, addr)

	payload := pd.MustMarshal(&raftpd.VoteRequest{Term: 9, CandidateID: 4})
	wire, err := client.Vote(ctx, &raftservice.VoteRequest{Data: payload})
	require.NoError(t, err)

	resp := &raftpd.VoteResponse{}
	require.NoError(t, pd.Unmarshal(resp, wire.GetData()))
	assert.Equal(t, &raftpd.VoteResponse{Term: 9, VoteGranted: true}, resp)
}

func TestServerRejectsMalformedEnvelope(t *testing.T) {
	ctx := testContext(t)
	addr := startServer(t, &engine{})
	client := rawClient(t, addr)

	_, err := client.AppendEntries(ctx, &raftservice.AppendEntriesRequest{
		Data: []byte("definitely not an envelope"),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServerForwardsClientWrite(t *testing.T) {
	ctx := testContext(t)
	addr := startServer(t, &engine{})
	client := rawClient(t, addr)

	payload := pd.MustMarshal(&raftpd.ClientWriteRequest{Command: []byte("del y")})
	wire, err := client.Forward(ctx, &raftservice.ClientWriteRequest{Data: payload})
	require.NoError(t, err)

	resp := &raftpd.ClientWriteResponse{}
	require.NoError(t, pd.Unmarshal(resp, wire.GetData()))
	assert.Equal(t, []byte("del y"), resp.Data)
	assert.Equal(t, uint64(42), resp.Index)
}
