// Package raft provides the network transport of a raft consensus node.
//
// It turns the typed consensus messages (append entries, vote, install
// snapshot, forwarded client write) into RPC calls against a specific
// cluster peer, and manages the lifetime of peer connections. It does
// not decide when to call a peer, never retries a failed call, and
// never heals a broken connection; all of that belongs to the
// consensus engine above it.
//
// The outbound side is `Router`, which implements `Transporter`.
// Register each peer once with `Router.AddPeer`, then call the four
// send operations with the target's id. Calls to one peer are
// serialized, calls to different peers run in parallel.
//
// The inbound side is `Server`: give it a `Handler` (the consensus
// engine's processing of incoming RPCs) and a listener, and it
// decodes arriving envelopes into the same typed messages.
//
// On the wire every message is a single opaque payload encoded by
// `utils/pd`, so the RPC schema stays frozen while the typed message
// set evolves.
package raft
