package pipeline

// Link is a capacity-bounded, order-preserving, single-producer /
// single-consumer stream. Push blocks while the link is full; Pop blocks
// while it is empty; TryPop never blocks. Absence of data on TryPop is the
// normal idle condition, not an error.
type Link[T any] struct {
	ch chan T
}

// NewLink constructs a bounded link. Depths below one are clamped to one so
// that a link always provides at least one element of decoupling.
func NewLink[T any](depth int) *Link[T] {
	if depth < 1 {
		depth = 1
	}

	return &Link[T]{ch: make(chan T, depth)}
}

// Push appends an item, blocking the caller until the link has room. This is
// the backpressure mechanism: a full downstream link stalls its producer.
func (this *Link[T]) Push(item T) {
	this.ch <- item
}

// Pop removes the oldest item, blocking until one is available. The second
// return is false once the link has been closed and drained.
func (this *Link[T]) Pop() (T, bool) {
	item, ok := <-this.ch
	return item, ok
}

// TryPop removes the oldest item if one is immediately available.
func (this *Link[T]) TryPop() (T, bool) {
	select {
	case item, ok := <-this.ch:
		return item, ok
	default:
		var zero T
		return zero, false
	}
}

// Close ends the stream. Only the producer side may call it.
func (this *Link[T]) Close() {
	close(this.ch)
}

// C exposes the receive side for multi-source select loops.
func (this *Link[T]) C() <-chan T {
	return this.ch
}

func (this *Link[T]) Len() int {
	return len(this.ch)
}

func (this *Link[T]) Cap() int {
	return cap(this.ch)
}

// Wire is a zero-capacity link: Push rendezvouses with a concurrently
// scheduled Pop. It models the combinational connections inside a stage
// boundary, where producer and consumer advance in the same logical step.
type Wire[T any] struct {
	ch chan T
}

func NewWire[T any]() *Wire[T] {
	return &Wire[T]{ch: make(chan T)}
}

func (this *Wire[T]) Push(item T) {
	this.ch <- item
}

func (this *Wire[T]) Pop() (T, bool) {
	item, ok := <-this.ch
	return item, ok
}

func (this *Wire[T]) TryPop() (T, bool) {
	select {
	case item, ok := <-this.ch:
		return item, ok
	default:
		var zero T
		return zero, false
	}
}

func (this *Wire[T]) Close() {
	close(this.ch)
}

func (this *Wire[T]) C() <-chan T {
	return this.ch
}
