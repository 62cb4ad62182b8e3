package pipeline

import "raypipe/src/misc"

// ConfigSequencer gates all external input. It idles on the operation stream
// and, per admitted operation, forwards exactly Num items from the matching
// external source to the matching downstream link. Operations execute one at
// a time, in arrival order, and item k+1 of an operation is never fetched
// before item k has been accepted downstream.
type ConfigSequencer struct {
	ops      *Link[Operation]
	memSrc   *Link[MemLoadRecord]
	posSrc   *Link[PositionSample]
	routerIn *Link[MemLoadRecord]
	stageAIn *Wire[PositionSample]
	stats    *misc.StatFactory
}

func (this *ConfigSequencer) Init(
	ops *Link[Operation],
	memSrc *Link[MemLoadRecord],
	posSrc *Link[PositionSample],
	routerIn *Link[MemLoadRecord],
	stageAIn *Wire[PositionSample],
	stats *misc.StatFactory,
) {
	this.ops = ops
	this.memSrc = memSrc
	this.posSrc = posSrc
	this.routerIn = routerIn
	this.stageAIn = stageAIn
	this.stats = stats
}

// Run executes operations until the operation stream closes, then closes the
// sequencer's two downstream links. The opcode handlers are strictly mutually
// exclusive: one operation record triggers exactly one of them, and an
// unrecognized mode consumes the record without forwarding anything.
func (this *ConfigSequencer) Run() {
	for {
		op, ok := this.ops.Pop()
		if !ok {
			break
		}

		switch op.Mode {
		case OpWeightInit:
			if !this.forwardMemLoads(op.Num) {
				goto done
			}
			if this.stats != nil {
				this.stats.Increment("ops_weight_init", 1)
			}
		case OpReadPos:
			if !this.forwardPositions(op.Num) {
				goto done
			}
			if this.stats != nil {
				this.stats.Increment("ops_read_pos", 1)
			}
		default:
			if this.stats != nil {
				this.stats.Increment("ops_ignored", 1)
			}
		}
	}

done:
	this.routerIn.Close()
	this.stageAIn.Close()
}

// forwardMemLoads pops num records from the external memory-load source and
// pushes each toward the router. The pop blocks until the external feeder has
// the record available; configuration precedes execution, so the feeder is
// expected to already hold the bulk load. Returns false if the source closed
// mid-operation.
func (this *ConfigSequencer) forwardMemLoads(num uint32) bool {
	for i := uint32(0); i < num; i++ {
		record, ok := this.memSrc.Pop()
		if !ok {
			return false
		}

		this.routerIn.Push(record)
		if this.stats != nil {
			this.stats.Increment("mem_records_forwarded", 1)
		}
	}

	return true
}

func (this *ConfigSequencer) forwardPositions(num uint32) bool {
	for i := uint32(0); i < num; i++ {
		sample, ok := this.posSrc.Pop()
		if !ok {
			return false
		}

		this.stageAIn.Push(sample)
		if this.stats != nil {
			this.stats.Increment("positions_forwarded", 1)
		}
	}

	return true
}
