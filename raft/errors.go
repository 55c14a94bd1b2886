package raft

import "fmt"

// UnknownPeerError reports a call against a peer that was never
// added to the router; no network activity took place.
type UnknownPeerError struct {
	Peer uint64
}

func (e *UnknownPeerError) Error() string {
	return fmt.Sprintf("peer %d not found", e.Peer)
}

// ConnectError reports a dial-time failure in AddPeer. The peer was
// not registered; a later AddPeer for the same id retries the dial.
type ConnectError struct {
	Peer uint64
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect to peer %d at %s: %v", e.Peer, e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// EncodeError reports a request that could not be encoded. This is a
// local fault in the caller's message, not a transport failure.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode request: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// RPCError reports a failed network round trip: connection refused,
// reset, timed out, or a remote-side fault. The peer's registry entry
// is left untouched.
type RPCError struct {
	Peer uint64
	Err  error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc to peer %d: %v", e.Peer, e.Err)
}

func (e *RPCError) Unwrap() error { return e.Err }

// DecodeError reports a round trip that succeeded at the RPC level
// but returned a payload that is not a valid encoding of the expected
// response type, i.e. the peer spoke an incompatible protocol.
type DecodeError struct {
	Peer uint64
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response from peer %d: %v", e.Peer, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
