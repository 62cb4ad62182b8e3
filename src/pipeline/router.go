package pipeline

import "raypipe/src/misc"

// MemRouter demultiplexes the single routed memory-load stream onto the two
// stage-bound links. Routing inspects only the ForStageA tag; records without
// a recognized destination default to the network-stage path. A full outbound
// link blocks the router, which in turn stops it draining the inbound stream:
// downstream stalls throttle upstream production without loss.
type MemRouter struct {
	in       *Link[MemLoadRecord]
	toStageA *Wire[MemLoadRecord]
	toStageB *Wire[MemLoadRecord]
	stats    *misc.StatFactory
}

func (this *MemRouter) Init(
	in *Link[MemLoadRecord],
	toStageA *Wire[MemLoadRecord],
	toStageB *Wire[MemLoadRecord],
	stats *misc.StatFactory,
) {
	this.in = in
	this.toStageA = toStageA
	this.toStageB = toStageB
	this.stats = stats
}

// Run forwards records until the inbound stream closes, then closes both
// outbound links.
func (this *MemRouter) Run() {
	for {
		record, ok := this.in.Pop()
		if !ok {
			break
		}

		if record.ForStageA {
			this.toStageA.Push(record)
			if this.stats != nil {
				this.stats.Increment("routed_stage_a", 1)
			}
		} else {
			this.toStageB.Push(record)
			if this.stats != nil {
				this.stats.Increment("routed_stage_b", 1)
			}
		}
	}

	this.toStageA.Close()
	this.toStageB.Close()
}
