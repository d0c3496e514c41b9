package physics

import (
	"log/slog"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/internal/arena"
	"github.com/oliverbestmann/rigid/internal/set"
)

// World simulates all entities of an ecs world that have a rigid.Transform
// together with a RigidBody and/or a Collider. Colliders without a RigidBody
// are treated as static.
//
// A World is not safe for concurrent use. Drive it from the same goroutine
// that mutates the ecs world.
type World struct {
	_ noCopy

	config Config
	clock  rigid.FixedStep

	groundHeight  float64
	groundEnabled bool

	constraints arena.Arena[Constraint]

	collisionCallback CollisionCallback
	eventCallback     CollisionEventCallback

	// contacts found by the most recent detection pass
	pairs []CollisionPair

	contacts     set.Set[pairKey]
	prevContacts set.Set[pairKey]

	// scratch buffers reused across steps
	colliders     []colliderEntry
	ccdCandidates []ccdCandidate
	spatialHash   *SpatialHash
	exitedScratch []pairKey

	timings        PhaseTimings
	stepsTotal     uint64
	droppedTotal   float64
	lastStepsCount int
}

type colliderEntry struct {
	Entity    rigid.EntityId
	Collider  *Collider
	Transform *rigid.Transform
	AABB      gm.AABB
}

// NewWorld creates a new physics world. The config is validated and
// replaced by the DefaultConfig if invalid.
func NewWorld(config Config) *World {
	pw := &World{groundEnabled: true}
	pw.SetConfig(config)
	return pw
}

// Config returns the active configuration.
func (pw *World) Config() Config {
	return pw.config
}

// SetConfig replaces the configuration. An invalid config is rejected
// and the DefaultConfig is used instead.
func (pw *World) SetConfig(config Config) {
	if err := config.Validate(); err != nil {
		slog.Warn("Invalid physics config, using defaults", slog.Any("err", err))
		config = DefaultConfig()
	}

	pw.config = config
	pw.clock.StepInterval = config.FixedTimestep
	pw.clock.MaxOverstep = config.MaxAccumulator

	if pw.spatialHash == nil || pw.spatialHash.CellSize() != config.SpatialCellSize {
		pw.spatialHash = NewSpatialHash(config.SpatialCellSize)
	}
}

// SetGravity is a convenience function that sets the gravity of all
// rigid bodies currently in the world.
func (pw *World) SetGravity(w *rigid.World, gravity gm.Vec3) {
	for _, rb := range rigid.GetComponentArray[RigidBody](w).All() {
		rb.GravityOverride = gravity
	}
}

// SetGroundPlane places the infinite ground plane at the given height and enables it.
func (pw *World) SetGroundPlane(height float64) {
	pw.groundHeight = height
	pw.groundEnabled = true
}

// GroundPlane returns the height of the ground plane and whether it is enabled.
func (pw *World) GroundPlane() (height float64, enabled bool) {
	return pw.groundHeight, pw.groundEnabled
}

// DisableGroundPlane removes the ground plane from the simulation.
func (pw *World) DisableGroundPlane() {
	pw.groundEnabled = false
}

// SetCollisionCallback sets the callback invoked for every detected contact.
// Pass nil to remove the callback. Callbacks run during the step and must
// not add or remove components.
func (pw *World) SetCollisionCallback(callback CollisionCallback) {
	pw.collisionCallback = callback
}

// SetCollisionEventCallback sets the callback invoked for enter, stay and exit
// events. Pass nil to remove the callback.
func (pw *World) SetCollisionEventCallback(callback CollisionEventCallback) {
	pw.eventCallback = callback
}

// CollisionPairs returns the contacts found during the last step. The slice
// is reused by the next step and must not be retained.
func (pw *World) CollisionPairs() []CollisionPair {
	return pw.pairs
}

// Alpha is the fraction of a step accumulated but not yet simulated.
// Use it to interpolate transforms for rendering.
func (pw *World) Alpha() float64 {
	return pw.clock.Alpha()
}

// Elapsed returns the total simulated time in seconds.
func (pw *World) Elapsed() float64 {
	return pw.clock.Elapsed
}

// Update advances the simulation by the frame time, running as many fixed
// steps as fit into the accumulated time. It returns the number of steps run.
func (pw *World) Update(w *rigid.World, frameTime float64) int {
	steps, dropped := pw.clock.Advance(frameTime)
	if dropped > 0 {
		pw.droppedTotal += dropped
		slog.Warn(
			"Physics is running behind, dropping time",
			slog.Float64("dropped", dropped),
			slog.Float64("droppedTotal", pw.droppedTotal),
		)
	}

	for range steps {
		pw.Step(w, pw.config.FixedTimestep)
	}

	pw.lastStepsCount = steps

	return steps
}

// Step runs exactly one simulation step of the given size.
func (pw *World) Step(w *rigid.World, dt float64) {
	if dt <= 0 {
		return
	}

	t := &pw.timings

	t.Integrate.Measure(func() { pw.IntegrateForces(w, dt) })
	t.CCD.Measure(func() { pw.PerformCCD(w, dt) })
	t.Detect.Measure(func() { pw.DetectCollisions(w) })
	t.Resolve.Measure(func() { pw.ResolveCollisions(w) })
	t.Constraints.Measure(func() { pw.SolveConstraints(w, dt) })
	t.Ground.Measure(func() { pw.ResolveGroundCollisions(w) })
	t.Sleep.Measure(func() { pw.UpdateSleep(w, dt) })

	pw.stepsTotal += 1
}

// PhaseTimings holds the time spent in each phase of a step.
type PhaseTimings struct {
	Integrate   rigid.Timings
	CCD         rigid.Timings
	Detect      rigid.Timings
	Resolve     rigid.Timings
	Constraints rigid.Timings
	Ground      rigid.Timings
	Sleep       rigid.Timings
}

// Stats describes the work done by the physics world.
type Stats struct {
	StepsTotal     uint64
	LastSteps      int
	DroppedTime    float64
	Contacts       int
	Constraints    int
	SpatialHashUse bool
	Timings        PhaseTimings
}

func (pw *World) Stats() Stats {
	return Stats{
		StepsTotal:     pw.stepsTotal,
		LastSteps:      pw.lastStepsCount,
		DroppedTime:    pw.droppedTotal,
		Contacts:       len(pw.pairs),
		Constraints:    pw.constraints.Len(),
		SpatialHashUse: len(pw.colliders) > pw.config.BroadPhaseThreshold,
		Timings:        pw.timings,
	}
}

// collectColliders fills the collider scratch buffer with all entities that
// have both a Collider and a Transform.
func (pw *World) collectColliders(w *rigid.World) []colliderEntry {
	pw.colliders = pw.colliders[:0]

	colliders := rigid.GetComponentArray[Collider](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)

	for idx := range colliders.Size() {
		entity := colliders.GetEntity(idx)

		tr := transforms.Get(entity)
		if tr == nil {
			continue
		}

		col := colliders.Data(idx)

		pw.colliders = append(pw.colliders, colliderEntry{
			Entity:    entity,
			Collider:  col,
			Transform: tr,
			AABB:      col.WorldAABB(*tr),
		})
	}

	return pw.colliders
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
