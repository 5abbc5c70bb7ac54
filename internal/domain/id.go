package domain

import (
	"strconv"
	"sync/atomic"
)

// EntityID is the process-unique identifier of an entity.
// IDs are issued in increasing order starting at 0.
type EntityID uint64

// String renders the id the way it shows up in logs.
func (id EntityID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// IDSource hands out increasing entity ids.
// The zero value is ready to use and starts at 0.
type IDSource struct {
	next atomic.Uint64
}

// Next returns a fresh id.
func (s *IDSource) Next() EntityID {
	return EntityID(s.next.Add(1) - 1)
}

// Peek returns the id the next call to Next will issue.
func (s *IDSource) Peek() EntityID {
	return EntityID(s.next.Load())
}

// processIDs is the single id source behind NewEntity.
var processIDs IDSource
