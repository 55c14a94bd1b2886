package pd

import (
	"log"
	"bytes"
	"encoding/gob"
)

// Message is anything the codec can carry; the typed consensus
// messages in raft/proto implement it with a pointer receiver.
type Message interface {
	Reset()
}

// Marshal encodes msg into an opaque byte payload.
func Marshal(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(msg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustMarshal is Marshal for messages built by this process,
// which must always encode.
func MustMarshal(msg Message) []byte {
	d, err := Marshal(msg)
	if err != nil {
		log.Panicf("marshal should never fail (%v)", err)
	}
	return d
}

// Unmarshal decodes data into msg. Bytes arriving from the network
// are arbitrary, so the error is always returned.
func Unmarshal(msg Message, data []byte) error {
	buf := bytes.NewBuffer(data)
	decode := gob.NewDecoder(buf)
	if err := decode.Decode(msg); err != nil {
		return err
	}
	return nil
}

// MustUnmarshal panic when data is not a valid encoding of msg.
func MustUnmarshal(msg Message, data []byte) {
	if err := Unmarshal(msg, data); err != nil {
		log.Panicf("unmarshal should never fail (%v)", err)
	}
}

// MaybeUnmarshal reports whether data decoded into msg.
func MaybeUnmarshal(msg Message, data []byte) bool {
	if err := Unmarshal(msg, data); err != nil {
		return false
	}
	return true
}
