package pipeline

import "raypipe/src/misc"

// The three kernel interfaces are the black-box contracts for the compute
// stages. The control core owns the channel discipline around them; the
// arithmetic behind Load/Expand/Evaluate/Composite is external to this
// package.

// FeatureKernel expands a position sample into a feature vector. Load applies
// one configuration record to the kernel's internal table.
type FeatureKernel interface {
	Load(record MemLoadRecord)
	Expand(sample PositionSample) FeatureVector
}

// NetworkKernel maps a feature vector to three color channels plus a density.
type NetworkKernel interface {
	Load(record MemLoadRecord)
	Evaluate(features FeatureVector) NetworkOutput
}

// CompositeKernel turns one compositing record into one final color
// contribution. Implementations may carry accumulation state across calls.
type CompositeKernel interface {
	Composite(record CompositingRecord) FinalResult
}

// FeatureStage drives a FeatureKernel from its configuration-load and sample
// links. Pending configuration loads are drained ahead of samples; a stage is
// not required to interleave table updates with streaming evaluation.
type FeatureStage struct {
	memReq *Wire[MemLoadRecord]
	in     *Wire[PositionSample]
	out    *Link[FeatureVector]
	kernel FeatureKernel
	stats  *misc.StatFactory
}

func (this *FeatureStage) Init(
	memReq *Wire[MemLoadRecord],
	in *Wire[PositionSample],
	out *Link[FeatureVector],
	kernel FeatureKernel,
	stats *misc.StatFactory,
) {
	this.memReq = memReq
	this.in = in
	this.out = out
	this.kernel = kernel
	this.stats = stats
}

func (this *FeatureStage) Run() {
	memReq := this.memReq.C()
	in := this.in.C()

	for memReq != nil || in != nil {
		// Drain configuration loads first when both links hold data.
		if memReq != nil {
			select {
			case record, ok := <-memReq:
				if !ok {
					memReq = nil
				} else {
					this.load(record)
				}
				continue
			default:
			}
		}

		select {
		case record, ok := <-memReq:
			if !ok {
				memReq = nil
				continue
			}
			this.load(record)
		case sample, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			this.out.Push(this.kernel.Expand(sample))
			if this.stats != nil {
				this.stats.Increment("samples_expanded", 1)
			}
		}
	}

	this.out.Close()
}

func (this *FeatureStage) load(record MemLoadRecord) {
	this.kernel.Load(record)
	if this.stats != nil {
		this.stats.Increment("feature_loads", 1)
	}
}

// NetworkStage drives a NetworkKernel from its configuration-load link and
// the feature buffer filled by the feature stage.
type NetworkStage struct {
	memReq *Wire[MemLoadRecord]
	in     *Link[FeatureVector]
	out    *Wire[NetworkOutput]
	kernel NetworkKernel
	stats  *misc.StatFactory
}

func (this *NetworkStage) Init(
	memReq *Wire[MemLoadRecord],
	in *Link[FeatureVector],
	out *Wire[NetworkOutput],
	kernel NetworkKernel,
	stats *misc.StatFactory,
) {
	this.memReq = memReq
	this.in = in
	this.out = out
	this.kernel = kernel
	this.stats = stats
}

func (this *NetworkStage) Run() {
	memReq := this.memReq.C()
	in := this.in.C()

	for memReq != nil || in != nil {
		if memReq != nil {
			select {
			case record, ok := <-memReq:
				if !ok {
					memReq = nil
				} else {
					this.load(record)
				}
				continue
			default:
			}
		}

		select {
		case record, ok := <-memReq:
			if !ok {
				memReq = nil
				continue
			}
			this.load(record)
		case features, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			this.out.Push(this.kernel.Evaluate(features))
			if this.stats != nil {
				this.stats.Increment("network_evaluations", 1)
			}
		}
	}

	this.out.Close()
}

func (this *NetworkStage) load(record MemLoadRecord) {
	this.kernel.Load(record)
	if this.stats != nil {
		this.stats.Increment("network_loads", 1)
	}
}

// CompositeStage drives a CompositeKernel and feeds the result sink buffer.
type CompositeStage struct {
	in     *Wire[CompositingRecord]
	out    *Link[FinalResult]
	kernel CompositeKernel
	stats  *misc.StatFactory
}

func (this *CompositeStage) Init(
	in *Wire[CompositingRecord],
	out *Link[FinalResult],
	kernel CompositeKernel,
	stats *misc.StatFactory,
) {
	this.in = in
	this.out = out
	this.kernel = kernel
	this.stats = stats
}

func (this *CompositeStage) Run() {
	for {
		record, ok := this.in.Pop()
		if !ok {
			break
		}

		this.out.Push(this.kernel.Composite(record))
		if this.stats != nil {
			this.stats.Increment("results_emitted", 1)
		}
	}

	this.out.Close()
}
