package simulator

import (
	"sync"

	"raypipe/src/misc"
	"raypipe/src/pipeline"
	"raypipe/src/pipeline/stage"
)

// Platform wires the control core and the three compute stages into the
// fixed pipeline topology:
//
//	operations ──► sequencer ──► router fifo ──► router ──► feature/network loads
//	positions ───► sequencer ──► feature stage ──► feature buffer ──► network
//	network ──► relay ──► compositor ──► result sink buffer ──► consumer
//
// Every connection is a typed link; composition is wiring, not polymorphism.
// The topology is a line plus one fan-out point and contains no cycles, so a
// stalled consumer throttles the pipeline without deadlocking it.
type Platform struct {
	config *pipeline.Config
	stats  *misc.StatFactory

	ops       *pipeline.Link[pipeline.Operation]
	positions *pipeline.Link[pipeline.PositionSample]
	memLoads  *pipeline.Link[pipeline.MemLoadRecord]
	results   *pipeline.Link[pipeline.FinalResult]

	sequencer      *pipeline.ConfigSequencer
	router         *pipeline.MemRouter
	relay          *pipeline.ResultRelay
	featureStage   *pipeline.FeatureStage
	networkStage   *pipeline.NetworkStage
	compositeStage *pipeline.CompositeStage

	wg      sync.WaitGroup
	started bool
}

func (this *Platform) Init(config *pipeline.Config) {
	this.config = config

	stats := new(misc.StatFactory)
	stats.Init("pipeline")
	this.stats = stats

	this.ops = pipeline.NewLink[pipeline.Operation](config.OpStreamDepth)
	this.positions = pipeline.NewLink[pipeline.PositionSample](config.PositionStreamDepth)
	this.memLoads = pipeline.NewLink[pipeline.MemLoadRecord](config.MemStreamDepth)
	this.results = pipeline.NewLink[pipeline.FinalResult](config.ResultFifoDepth)

	routerIn := pipeline.NewLink[pipeline.MemLoadRecord](config.MemReqFifoDepth)
	featureMemReq := pipeline.NewWire[pipeline.MemLoadRecord]()
	networkMemReq := pipeline.NewWire[pipeline.MemLoadRecord]()
	featureIn := pipeline.NewWire[pipeline.PositionSample]()
	featureOut := pipeline.NewLink[pipeline.FeatureVector](config.StageBufferDepth)
	networkOut := pipeline.NewWire[pipeline.NetworkOutput]()
	compositeIn := pipeline.NewWire[pipeline.CompositingRecord]()

	this.sequencer = new(pipeline.ConfigSequencer)
	this.sequencer.Init(this.ops, this.memLoads, this.positions, routerIn, featureIn, stats)

	this.router = new(pipeline.MemRouter)
	this.router.Init(routerIn, featureMemReq, networkMemReq, stats)

	this.relay = new(pipeline.ResultRelay)
	this.relay.Init(networkOut, compositeIn, config.StepSize, stats)

	this.featureStage = new(pipeline.FeatureStage)
	this.featureStage.Init(
		featureMemReq,
		featureIn,
		featureOut,
		stage.NewFeatureEncoder(config.ProjectionRows),
		stats,
	)

	this.networkStage = new(pipeline.NetworkStage)
	this.networkStage.Init(
		networkMemReq,
		featureOut,
		networkOut,
		stage.NewNetwork(config.FeatureDim(), config.HiddenDim),
		stats,
	)

	this.compositeStage = new(pipeline.CompositeStage)
	this.compositeStage.Init(compositeIn, this.results, stage.NewCompositor(), stats)
}

// Start launches one goroutine per perpetual activity. The topology is static
// for the platform's lifetime; no goroutines are created afterwards.
func (this *Platform) Start() {
	if this.started {
		return
	}
	this.started = true

	this.spawn(this.sequencer.Run)
	this.spawn(this.router.Run)
	this.spawn(this.relay.Run)
	this.spawn(this.featureStage.Run)
	this.spawn(this.networkStage.Run)
	this.spawn(this.compositeStage.Run)
}

func (this *Platform) spawn(run func()) {
	this.wg.Add(1)
	go func() {
		defer this.wg.Done()
		run()
	}()
}

// Ops is the inbound operation stream.
func (this *Platform) Ops() *pipeline.Link[pipeline.Operation] {
	return this.ops
}

// Positions is the inbound position-sample stream.
func (this *Platform) Positions() *pipeline.Link[pipeline.PositionSample] {
	return this.positions
}

// MemLoads is the inbound memory-load stream.
func (this *Platform) MemLoads() *pipeline.Link[pipeline.MemLoadRecord] {
	return this.memLoads
}

// Results is the outbound final-result stream. It closes once the platform
// has shut down and every in-flight sample has drained.
func (this *Platform) Results() *pipeline.Link[pipeline.FinalResult] {
	return this.results
}

func (this *Platform) Stats() *misc.StatFactory {
	return this.stats
}

// Shutdown closes the inbound streams and waits for the close to cascade
// through every activity. Callers must have finished feeding the inbound
// links; results still in flight remain readable until Results closes.
func (this *Platform) Shutdown() {
	if !this.started {
		return
	}

	this.ops.Close()
	this.memLoads.Close()
	this.positions.Close()
	this.wg.Wait()
	this.started = false
}

func (this *Platform) Fini() {
	this.sequencer = nil
	this.router = nil
	this.relay = nil
	this.featureStage = nil
	this.networkStage = nil
	this.compositeStage = nil
	this.ops = nil
	this.positions = nil
	this.memLoads = nil
	this.results = nil
}
