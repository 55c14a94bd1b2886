package raftpd

import (
	"encoding/gob"
	"fmt"
)

// The transport carries four request/response pairs:
//
// Message from leader:
// - AppendEntries request (also the heartbeat when Entries is empty)
// - InstallSnapshot request
//
// Message from candidate:
// - Vote request
//
// Message from any non-leader:
// - ClientWrite request, relaying a client write to the leader
//
// Each request has exactly one response type, produced by the remote
// consensus engine; the transport never synthesizes one.

type AppendEntriesRequest struct {
	Term         uint64
	LeaderID     uint64
	PrevLogIndex uint64
	PrevLogTerm  uint64
	Entries      []Entry
	LeaderCommit uint64
}

func (m *AppendEntriesRequest) Reset() { *m = AppendEntriesRequest{} }

func (m AppendEntriesRequest) String() string {
	return fmt.Sprintf("raftpd.AppendEntriesRequest{term: %d, leader: %d, "+
		"prev: %d [term: %d], entries: %d, commit: %d}",
		m.Term, m.LeaderID, m.PrevLogIndex, m.PrevLogTerm,
		len(m.Entries), m.LeaderCommit)
}

type AppendEntriesResponse struct {
	Term    uint64
	Success bool
}

func (m *AppendEntriesResponse) Reset() { *m = AppendEntriesResponse{} }

type VoteRequest struct {
	Term         uint64
	CandidateID  uint64
	LastLogIndex uint64
	LastLogTerm  uint64
}

func (m *VoteRequest) Reset() { *m = VoteRequest{} }

func (m VoteRequest) String() string {
	return fmt.Sprintf("raftpd.VoteRequest{term: %d, candidate: %d, "+
		"last: %d [term: %d]}",
		m.Term, m.CandidateID, m.LastLogIndex, m.LastLogTerm)
}

type VoteResponse struct {
	Term        uint64
	VoteGranted bool
}

func (m *VoteResponse) Reset() { *m = VoteResponse{} }

type InstallSnapshotRequest struct {
	Term              uint64
	LeaderID          uint64
	LastIncludedIndex uint64
	LastIncludedTerm  uint64
	Offset            uint64
	Data              []byte
	Done              bool
}

func (m *InstallSnapshotRequest) Reset() { *m = InstallSnapshotRequest{} }

func (m InstallSnapshotRequest) String() string {
	return fmt.Sprintf("raftpd.InstallSnapshotRequest{term: %d, leader: %d, "+
		"last: %d [term: %d], offset: %d, bytes: %d, done: %v}",
		m.Term, m.LeaderID, m.LastIncludedIndex, m.LastIncludedTerm,
		m.Offset, len(m.Data), m.Done)
}

type InstallSnapshotResponse struct {
	Term uint64
}

func (m *InstallSnapshotResponse) Reset() { *m = InstallSnapshotResponse{} }

type ClientWriteRequest struct {
	Command []byte
}

func (m *ClientWriteRequest) Reset() { *m = ClientWriteRequest{} }

type ClientWriteResponse struct {
	Index uint64
	Data  []byte
}

func (m *ClientWriteResponse) Reset() { *m = ClientWriteResponse{} }

func init() {
	gob.Register(AppendEntriesRequest{})
	gob.Register(AppendEntriesResponse{})
	gob.Register(VoteRequest{})
	gob.Register(VoteResponse{})
	gob.Register(InstallSnapshotRequest{})
	gob.Register(InstallSnapshotResponse{})
	gob.Register(ClientWriteRequest{})
	gob.Register(ClientWriteResponse{})
}
