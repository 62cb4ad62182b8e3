package pipeline

import "raypipe/src/misc"

// ResultRelay repacks the network stage's 4-vector into the compositing
// stage's input shape: the first three values become the emitted color, the
// fourth becomes the density, and the step-size field is stamped with a fixed
// placeholder rather than a value derived from sample spacing. One input
// yields exactly one output; outputs are never merged or reordered.
type ResultRelay struct {
	in    *Wire[NetworkOutput]
	out   *Wire[CompositingRecord]
	delta misc.Fixed
	stats *misc.StatFactory
}

func (this *ResultRelay) Init(
	in *Wire[NetworkOutput],
	out *Wire[CompositingRecord],
	delta misc.Fixed,
	stats *misc.StatFactory,
) {
	this.in = in
	this.out = out
	this.delta = delta
	this.stats = stats
}

func (this *ResultRelay) Run() {
	for {
		output, ok := this.in.Pop()
		if !ok {
			break
		}

		var record CompositingRecord
		for i := 0; i < 3; i++ {
			record.EmittedC[i] = output.Values[i]
		}
		record.Sigma = output.Values[3]
		record.Delta = this.delta
		record.IsLast = output.IsLast

		this.out.Push(record)
		if this.stats != nil {
			this.stats.Increment("relay_records", 1)
		}
	}

	this.out.Close()
}
