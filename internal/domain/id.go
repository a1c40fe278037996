package domain

import (
	"strconv"
	"sync/atomic"
	"time"
)

var idSeq atomic.Uint64

// NewID returns a time-based identifier unique within this process.
// The nanosecond timestamp keeps ids roughly sortable by creation time;
// the sequence suffix keeps two ids minted in the same instant distinct.
func NewID() string {
	n := idSeq.Add(1)
	return strconv.FormatInt(time.Now().UnixNano(), 36) + "-" + strconv.FormatUint(n, 36)
}
