package raft

import (
	"context"
	"net"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zisake/MeiliSearch/raft/proto"
	"github.com/zisake/MeiliSearch/raft/service"
	"github.com/zisake/MeiliSearch/utils"
	"github.com/zisake/MeiliSearch/utils/pd"
)

// Server is the inbound half of the transport: it accepts the four
// RPC methods from peers, decodes each envelope into its typed
// message, and hands it to the consensus engine's Handler. Responses
// travel back the same way.
type Server struct {
	raftservice.UnimplementedRaftServiceServer

	handler Handler
	grpc    *grpc.Server
}

// NewServer return a Server dispatching to handler.
func NewServer(handler Handler) *Server {
	s := &Server{
		handler: handler,
		grpc:    grpc.NewServer(),
	}
	raftservice.RegisterRaftServiceServer(s.grpc, s)
	return s
}

// Serve accepts peer connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	log.Infof("raft transport listening on %s", lis.Addr())
	return s.grpc.Serve(lis)
}

// Stop stops the server, closing the listener and all live
// peer connections.
func (s *Server) Stop() {
	s.grpc.Stop()
}

func (s *Server) AppendEntries(ctx context.Context, req *raftservice.AppendEntriesRequest) (*raftservice.AppendEntriesResponse, error) {
	msg := &raftpd.AppendEntriesRequest{}
	if err := pd.Unmarshal(msg, req.GetData()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode append entries request: %v", err)
	}
	log.Debugf("append entries from %d [term: %d]", msg.LeaderID, msg.Term)

	resp, err := s.handler.AppendEntries(ctx, msg)
	if err != nil {
		return nil, err
	}
	utils.Assert(resp != nil, "handler returned no append entries response")
	return &raftservice.AppendEntriesResponse{Data: pd.MustMarshal(resp)}, nil
}

func (s *Server) InstallSnapshot(ctx context.Context, req *raftservice.InstallSnapshotRequest) (*raftservice.InstallSnapshotResponse, error) {
	msg := &raftpd.InstallSnapshotRequest{}
	if err := pd.Unmarshal(msg, req.GetData()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode install snapshot request: %v", err)
	}
	log.Debugf("install snapshot from %d [term: %d] at offset %d", msg.LeaderID, msg.Term, msg.Offset)

	resp, err := s.handler.InstallSnapshot(ctx, msg)
	if err != nil {
		return nil, err
	}
	utils.Assert(resp != nil, "handler returned no install snapshot response")
	return &raftservice.InstallSnapshotResponse{Data: pd.MustMarshal(resp)}, nil
}

func (s *Server) Vote(ctx context.Context, req *raftservice.VoteRequest) (*raftservice.VoteResponse, error) {
	msg := &raftpd.VoteRequest{}
	if err := pd.Unmarshal(msg, req.GetData()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode vote request: %v", err)
	}
	log.Debugf("vote request from %d [term: %d]", msg.CandidateID, msg.Term)

	resp, err := s.handler.Vote(ctx, msg)
	if err != nil {
		return nil, err
	}
	utils.Assert(resp != nil, "handler returned no vote response")
	return &raftservice.VoteResponse{Data: pd.MustMarshal(resp)}, nil
}

func (s *Server) Forward(ctx context.Context, req *raftservice.ClientWriteRequest) (*raftservice.ClientWriteResponse, error) {
	msg := &raftpd.ClientWriteRequest{}
	if err := pd.Unmarshal(msg, req.GetData()); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "decode forwarded write: %v", err)
	}

	resp, err := s.handler.ForwardWrite(ctx, msg)
	if err != nil {
		return nil, err
	}
	utils.Assert(resp != nil, "handler returned no client write response")
	return &raftservice.ClientWriteResponse{Data: pd.MustMarshal(resp)}, nil
}
