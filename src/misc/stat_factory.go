package misc

import (
	"fmt"
	"sort"
	"sync"
)

// StatFactory collects named monotonic counters for a component. The pipeline
// increments counters from several goroutines, so access is mutex-guarded.
type StatFactory struct {
	name     string
	mu       sync.Mutex
	counters map[string]int64
}

func (this *StatFactory) Init(name string) {
	this.name = name
	this.counters = make(map[string]int64)
}

func (this *StatFactory) Fini() {
	this.counters = nil
}

func (this *StatFactory) Increment(key string, delta int64) {
	this.mu.Lock()
	defer this.mu.Unlock()

	this.counters[key] += delta
}

func (this *StatFactory) Value(key string) int64 {
	this.mu.Lock()
	defer this.mu.Unlock()

	return this.counters[key]
}

// ToLines renders all counters as "<component>.<key>: <value>" lines in
// deterministic key order.
func (this *StatFactory) ToLines() []string {
	this.mu.Lock()
	defer this.mu.Unlock()

	keys := make([]string, 0, len(this.counters))
	for key := range this.counters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s.%s: %d", this.name, key, this.counters[key]))
	}

	return lines
}
