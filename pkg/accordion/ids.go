package accordion

import (
	"crypto/rand"
	"fmt"
	"sync/atomic"
)

// IDSource generates wrapper identifiers.
type IDSource interface {
	NextID() string
}

// IDFunc adapts a function to IDSource.
type IDFunc func() string

// NextID implements IDSource.
func (f IDFunc) NextID() string { return f() }

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomIDs returns ids of the form "accordion-xxxxxxxxx" with nine random
// base36 characters.
func RandomIDs() IDSource {
	return IDFunc(func() string {
		var b [9]byte
		if _, err := rand.Read(b[:]); err != nil {
			return SequentialIDs("accordion").NextID()
		}
		for i := range b {
			b[i] = base36[int(b[i])%len(base36)]
		}
		return "accordion-" + string(b[:])
	})
}

// globalIDCounter backs SequentialIDs so ids stay unique across groups in
// one process.
var globalIDCounter uint64

// SequentialIDs returns ids of the form "<prefix>-<n>" from a process-wide
// counter.
func SequentialIDs(prefix string) IDSource {
	return IDFunc(func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddUint64(&globalIDCounter, 1))
	})
}

// CountingIDs returns ids "<prefix>-1", "<prefix>-2", ... from a private
// counter. Useful where output must be reproducible.
func CountingIDs(prefix string) IDSource {
	var n uint64
	return IDFunc(func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	})
}
