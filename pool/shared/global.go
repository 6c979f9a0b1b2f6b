package shared

import (
	"reflect"
	"sync"

	"github.com/onsen-go/onsen/pool"
)

var (
	globalMu sync.Mutex
	globals  = make(map[reflect.Type]any)
)

// Global returns the process-wide pool for element type T, creating it on
// first use. The config applies only to that first call; later calls for the
// same type return the existing pool unchanged. Global pools live for the
// whole process and are never closed.
func Global[T any](config *pool.Config) *SyncPool[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()

	globalMu.Lock()
	defer globalMu.Unlock()

	if existing, ok := globals[key]; ok {
		return existing.(*SyncPool[T])
	}
	sp := NewSync[T](config)
	globals[key] = sp
	return sp
}
