package raftpd

import (
	"encoding/gob"
	"fmt"
)

type EntryType int

const (
	EntryNormal EntryType = iota
	EntryBroadcast
	EntryConfChange
)

var entryTypeStr = []string{
	"Normal",
	"Broadcast",
	"ConfChange",
}

func (t EntryType) String() string {
	return entryTypeStr[t]
}

type Entry struct {
	Index uint64
	Term  uint64
	Type  EntryType
	Data  []byte
}

func (e *Entry) Reset() { *e = Entry{} }

func (e Entry) String() string {
	return fmt.Sprintf("raftpd.Entry{idx: %d, term: %d, type: %v, data: %v}",
		e.Index, e.Term, e.Type, e.Data)
}

func init() {
	gob.Register(Entry{})
}
