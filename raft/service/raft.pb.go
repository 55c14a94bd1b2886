// Package raftservice holds the wire-level bindings for raft.proto.
//
// The schema is frozen by design: every message is a single opaque
// bytes field, and the four methods map one-to-one to the transport's
// call operations. Because the shape never changes, the bindings are
// maintained by hand instead of regenerated; keep them in sync with
// raft.proto.
package raftservice

import (
	"github.com/golang/protobuf/proto"
)

type AppendEntriesRequest struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *AppendEntriesRequest) Reset()         { *m = AppendEntriesRequest{} }
func (m *AppendEntriesRequest) String() string { return proto.CompactTextString(m) }
func (*AppendEntriesRequest) ProtoMessage()    {}

func (m *AppendEntriesRequest) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type AppendEntriesResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *AppendEntriesResponse) Reset()         { *m = AppendEntriesResponse{} }
func (m *AppendEntriesResponse) String() string { return proto.CompactTextString(m) }
func (*AppendEntriesResponse) ProtoMessage()    {}

func (m *AppendEntriesResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type InstallSnapshotRequest struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *InstallSnapshotRequest) Reset()         { *m = InstallSnapshotRequest{} }
func (m *InstallSnapshotRequest) String() string { return proto.CompactTextString(m) }
func (*InstallSnapshotRequest) ProtoMessage()    {}

func (m *InstallSnapshotRequest) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type InstallSnapshotResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *InstallSnapshotResponse) Reset()         { *m = InstallSnapshotResponse{} }
func (m *InstallSnapshotResponse) String() string { return proto.CompactTextString(m) }
func (*InstallSnapshotResponse) ProtoMessage()    {}

func (m *InstallSnapshotResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type VoteRequest struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *VoteRequest) Reset()         { *m = VoteRequest{} }
func (m *VoteRequest) String() string { return proto.CompactTextString(m) }
func (*VoteRequest) ProtoMessage()    {}

func (m *VoteRequest) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type VoteResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *VoteResponse) Reset()         { *m = VoteResponse{} }
func (m *VoteResponse) String() string { return proto.CompactTextString(m) }
func (*VoteResponse) ProtoMessage()    {}

func (m *VoteResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type ClientWriteRequest struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ClientWriteRequest) Reset()         { *m = ClientWriteRequest{} }
func (m *ClientWriteRequest) String() string { return proto.CompactTextString(m) }
func (*ClientWriteRequest) ProtoMessage()    {}

func (m *ClientWriteRequest) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

type ClientWriteResponse struct {
	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *ClientWriteResponse) Reset()         { *m = ClientWriteResponse{} }
func (m *ClientWriteResponse) String() string { return proto.CompactTextString(m) }
func (*ClientWriteResponse) ProtoMessage()    {}

func (m *ClientWriteResponse) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}
