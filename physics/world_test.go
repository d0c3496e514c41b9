package physics

import (
	"math"
	"testing"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 64.0

func newTestWorld(configure ...func(config *Config)) (*rigid.World, *World) {
	config := DefaultConfig()
	config.EnableSleep = false

	for _, fn := range configure {
		fn(&config)
	}

	pw := NewWorld(config)
	pw.DisableGroundPlane()

	return rigid.NewWorld(), pw
}

// floatingBody returns a dynamic body without gravity or damping.
func floatingBody() RigidBody {
	rb := DefaultRigidBody()
	rb.UseGravity = false
	rb.LinearDamping = 0
	rb.AngularDamping = 0
	return rb
}

func spawnBody(w *rigid.World, position gm.Vec3, rb RigidBody, col Collider) rigid.EntityId {
	return w.Spawn(
		rigid.With(rigid.TransformFromTranslation(position)),
		rigid.With(rb),
		rigid.With(col),
	)
}

func transformOf(w *rigid.World, entity rigid.EntityId) *rigid.Transform {
	return rigid.GetComponent[rigid.Transform](w, entity)
}

func bodyOf(w *rigid.World, entity rigid.EntityId) *RigidBody {
	return rigid.GetComponent[RigidBody](w, entity)
}

func TestConstantForce(t *testing.T) {
	w, pw := newTestWorld()

	rb := floatingBody()
	rb.Mass = 2

	entity := spawnBody(w, gm.Vec3{}, rb, BoxCollider(gm.VecSplat(0.5)))

	force := gm.Vec3{X: 4}

	for range 10 {
		pw.AddForce(w, entity, force)
		pw.Step(w, testDt)
	}

	require.InDelta(t, 10*testDt*4/2, bodyOf(w, entity).Velocity.X, 1e-9)
	require.Zero(t, bodyOf(w, entity).Acceleration)
}

func TestGravity(t *testing.T) {
	w, pw := newTestWorld()

	rb := floatingBody()
	rb.UseGravity = true

	entity := spawnBody(w, gm.Vec3{Y: 100}, rb, BoxCollider(gm.VecSplat(0.5)))

	for range 32 {
		pw.Step(w, testDt)
	}

	require.InDelta(t, -9.81*32*testDt, bodyOf(w, entity).Velocity.Y, 1e-9)
	require.Less(t, transformOf(w, entity).Translation.Y, 100.0)
}

func TestForcesIgnoreStaticBodies(t *testing.T) {
	w, pw := newTestWorld()

	entity := spawnBody(w, gm.Vec3{}, StaticRigidBody(), BoxCollider(gm.VecSplat(0.5)))

	pw.AddForce(w, entity, gm.Vec3{X: 10})
	pw.AddImpulse(w, entity, gm.Vec3{X: 10})
	pw.AddTorque(w, entity, gm.Vec3{X: 10})
	pw.Step(w, testDt)

	rb := bodyOf(w, entity)
	require.Zero(t, rb.Velocity)
	require.Zero(t, rb.AngularVelocity)
	require.Equal(t, gm.Vec3{}, transformOf(w, entity).Translation)
}

func TestInvMass(t *testing.T) {
	rb := DefaultRigidBody()
	rb.Mass = 4
	require.Equal(t, 0.25, rb.InvMass())

	rb.Mass = 1e-9
	require.Zero(t, rb.InvMass())

	rb.Mass = 4
	rb.IsStatic = true
	require.Zero(t, rb.InvMass())
}

func TestImpulseAndTorque(t *testing.T) {
	w, pw := newTestWorld()

	rb := floatingBody()
	rb.Mass = 2
	entity := spawnBody(w, gm.Vec3{}, rb, BoxCollider(gm.VecSplat(0.5)))

	pw.AddImpulse(w, entity, gm.Vec3{Y: 4})
	pw.AddTorque(w, entity, gm.Vec3{Z: 1})

	require.Equal(t, gm.Vec3{Y: 2}, bodyOf(w, entity).Velocity)
	require.Equal(t, gm.Vec3{Z: 0.5}, bodyOf(w, entity).AngularVelocity)

	pw.Step(w, testDt)

	// rotation is integrated in degrees
	require.InDelta(t, 0.5*testDt*180/math.Pi, transformOf(w, entity).Rotation.Z, 1e-9)
}

func TestUpdateRunsFixedSteps(t *testing.T) {
	w, pw := newTestWorld()

	require.Equal(t, 0, pw.Update(w, testDt/2))
	require.InDelta(t, 0.5, pw.Alpha(), 1e-9)

	require.Equal(t, 1, pw.Update(w, testDt/2))
	require.InDelta(t, 0, pw.Alpha(), 1e-9)

	// large frame times are clamped to the maximum accumulator
	require.Equal(t, 16, pw.Update(w, 1.0))
	require.Equal(t, uint64(17), pw.Stats().StepsTotal)
	require.InDelta(t, 17*testDt, pw.Elapsed(), 1e-9)

	require.Equal(t, 0, pw.Update(w, -1))
}

func TestStepIgnoresNonPositiveDelta(t *testing.T) {
	w, pw := newTestWorld()

	rb := floatingBody()
	rb.Velocity = gm.Vec3{X: 1}
	entity := spawnBody(w, gm.Vec3{}, rb, BoxCollider(gm.VecSplat(0.5)))

	pw.Step(w, 0)
	pw.Step(w, -1)

	require.Equal(t, gm.Vec3{}, transformOf(w, entity).Translation)
}

func TestDampingAndVelocityClamp(t *testing.T) {
	w, pw := newTestWorld(func(config *Config) {
		config.MaxLinearVelocity = 10
	})

	rb := floatingBody()
	rb.Velocity = gm.Vec3{X: 100}
	fast := spawnBody(w, gm.Vec3{}, rb, BoxCollider(gm.VecSplat(0.5)))

	rb = floatingBody()
	rb.Velocity = gm.Vec3{Z: 1}
	rb.LinearDamping = 1
	damped := spawnBody(w, gm.Vec3{X: 100}, rb, BoxCollider(gm.VecSplat(0.5)))

	pw.Step(w, testDt)

	require.InDelta(t, 10, bodyOf(w, fast).Velocity.Length(), 1e-9)
	require.InDelta(t, 1-testDt, bodyOf(w, damped).Velocity.Z, 1e-9)
}

func TestSetGravity(t *testing.T) {
	w, pw := newTestWorld()

	entity := spawnBody(w, gm.Vec3{Y: 10}, DefaultRigidBody(), BoxCollider(gm.VecSplat(0.5)))

	pw.SetGravity(w, gm.Vec3{X: 1})
	require.Equal(t, gm.Vec3{X: 1}, bodyOf(w, entity).GravityOverride)
}

func TestGroundPlane(t *testing.T) {
	_, pw := newTestWorld()

	_, enabled := pw.GroundPlane()
	require.False(t, enabled)

	pw.SetGroundPlane(-2)

	height, enabled := pw.GroundPlane()
	require.True(t, enabled)
	require.Equal(t, -2.0, height)
}

func TestGroundBounceAndFriction(t *testing.T) {
	w, pw := newTestWorld()
	pw.SetGroundPlane(0)

	rb := floatingBody()
	rb.Restitution = 0.5
	rb.Friction = 0.5
	rb.Velocity = gm.Vec3{X: 2, Y: -4}

	entity := spawnBody(w, gm.Vec3{Y: 0.4}, rb, BoxCollider(gm.VecSplat(0.5)))

	pw.ResolveGroundCollisions(w)

	require.InDelta(t, 0.5, transformOf(w, entity).Translation.Y, 1e-9)
	require.InDelta(t, 2.0, bodyOf(w, entity).Velocity.Y, 1e-9)
	require.InDelta(t, 2*(1-0.5*0.1), bodyOf(w, entity).Velocity.X, 1e-9)
}

func TestGroundSnapsSmallBounces(t *testing.T) {
	w, pw := newTestWorld()
	pw.SetGroundPlane(0)

	rb := floatingBody()
	rb.Restitution = 0.5
	rb.Velocity = gm.Vec3{Y: -0.1}

	entity := spawnBody(w, gm.Vec3{Y: 0.45}, rb, BoxCollider(gm.VecSplat(0.5)))

	pw.ResolveGroundCollisions(w)

	require.Zero(t, bodyOf(w, entity).Velocity.Y)
	require.InDelta(t, 0.5, transformOf(w, entity).Translation.Y, 1e-9)
}

func TestGroundWithoutCollider(t *testing.T) {
	w, pw := newTestWorld()
	pw.SetGroundPlane(1)

	rb := floatingBody()
	rb.Velocity = gm.Vec3{Y: -1}

	entity := w.Spawn(
		rigid.With(rigid.TransformFromTranslation(gm.Vec3{})),
		rigid.With(rb),
	)

	pw.ResolveGroundCollisions(w)

	require.InDelta(t, 1, transformOf(w, entity).Translation.Y, 1e-9)
	require.InDelta(t, 0.3, bodyOf(w, entity).Velocity.Y, 1e-9)
}

func TestBodyComesToRestAndSleeps(t *testing.T) {
	w := rigid.NewWorld()
	pw := NewWorld(DefaultConfig())

	entity := spawnBody(w, gm.Vec3{Y: 2}, DefaultRigidBody(), BoxCollider(gm.VecSplat(0.5)))

	for range 5 * 64 {
		pw.Update(w, testDt)
	}

	require.True(t, pw.IsSleeping(w, entity))
	require.InDelta(t, 0.5, transformOf(w, entity).Translation.Y, 1e-6)
	require.Zero(t, bodyOf(w, entity).Velocity)

	// sleeping bodies are not integrated
	pw.Step(w, testDt)
	require.InDelta(t, 0.5, transformOf(w, entity).Translation.Y, 1e-6)

	// a force wakes the body up
	pw.AddForce(w, entity, gm.Vec3{Y: 100})
	require.False(t, pw.IsSleeping(w, entity))

	pw.Step(w, testDt)
	require.Greater(t, transformOf(w, entity).Translation.Y, 0.5)
}

func TestSleepThresholdOverride(t *testing.T) {
	w, pw := newTestWorld(func(config *Config) {
		config.EnableSleep = true
	})

	rb := floatingBody()
	rb.Velocity = gm.Vec3{X: 0.5}
	rb.SleepLinearThreshold = 1
	slow := spawnBody(w, gm.Vec3{}, rb, BoxCollider(gm.VecSplat(0.5)))

	rb = floatingBody()
	rb.Velocity = gm.Vec3{X: 0.5}
	moving := spawnBody(w, gm.Vec3{Y: 10}, rb, BoxCollider(gm.VecSplat(0.5)))

	for range 64 {
		pw.Step(w, testDt)
	}

	require.True(t, pw.IsSleeping(w, slow))
	require.False(t, pw.IsSleeping(w, moving))

	pw.Wake(w, slow)
	require.False(t, pw.IsSleeping(w, slow))
	require.Zero(t, bodyOf(w, slow).SleepTimer)
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	config := DefaultConfig()
	config.FixedTimestep = 0

	pw := NewWorld(config)
	require.Equal(t, DefaultConfig(), pw.Config())
}

func TestStatsRecordPhaseTimings(t *testing.T) {
	w, pw := newTestWorld()

	spawnBody(w, gm.Vec3{}, floatingBody(), BoxCollider(gm.VecSplat(0.5)))

	pw.Step(w, testDt)
	pw.Step(w, testDt)

	stats := pw.Stats()
	require.Equal(t, uint64(2), stats.StepsTotal)
	require.Equal(t, 2, stats.Timings.Integrate.Count)
	require.Equal(t, 2, stats.Timings.Detect.Count)
	require.Equal(t, 2, stats.Timings.Sleep.Count)
	require.False(t, stats.SpatialHashUse)
}
