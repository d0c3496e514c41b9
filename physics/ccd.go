package physics

import (
	"log/slog"
	"math"

	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics/collision"
)

// CCDResult is the first impact found by a sweep.
type CCDResult struct {
	Hit bool

	// TOI is the time of impact as a fraction of the displacement in [0, 1].
	TOI float64

	// Point on the surface of the other collider.
	Point gm.Vec3

	// Normal of the surface that was hit, pointing towards the swept body.
	Normal gm.Vec3

	Entity rigid.EntityId
}

// SweepTest sweeps the collider of the entity along the displacement starting
// at its current position and reports the first collider it would hit.
func (pw *World) SweepTest(w *rigid.World, entity rigid.EntityId, displacement gm.Vec3) CCDResult {
	col := rigid.GetComponent[Collider](w, entity)
	tr := rigid.GetComponent[rigid.Transform](w, entity)
	if col == nil || tr == nil {
		return CCDResult{}
	}

	return pw.sweep(w, entity, col, col.WorldAABB(*tr), displacement)
}

// PerformCCD prevents fast bodies with EnableCCD from tunneling through thin
// colliders. Each body integrated this step is swept from its previous
// position. On impact it is moved back to just before the time of impact and
// its velocity along the contact normal is reflected.
func (pw *World) PerformCCD(w *rigid.World, dt float64) {
	for _, candidate := range pw.ccdCandidates {
		rb := rigid.GetComponent[RigidBody](w, candidate.Entity)
		col := rigid.GetComponent[Collider](w, candidate.Entity)
		tr := rigid.GetComponent[rigid.Transform](w, candidate.Entity)
		if rb == nil || col == nil || tr == nil || col.IsTrigger {
			continue
		}

		displacement := candidate.Displacement
		start := tr.Translation.Sub(displacement)

		startAABB := col.WorldAABB(*tr).Translate(displacement.Neg())

		// slow bodies are handled by the discrete phase
		if displacement.Length() <= startAABB.HalfSize().MinComponent() {
			continue
		}

		result := pw.sweep(w, candidate.Entity, col, startAABB, displacement)
		if !result.Hit {
			continue
		}

		fraction := math.Max(0, result.TOI-pw.config.CCDSafetyMargin)
		tr.Translation = start.Add(displacement.Mul(fraction))

		vn := rb.Velocity.Dot(result.Normal)
		if vn < 0 {
			bounce := 1 + restitutionOf(rb, col)
			rb.Velocity = rb.Velocity.Sub(result.Normal.Mul(vn * bounce))
		}

		slog.Debug(
			"Continuous collision",
			slog.Any("entity", candidate.Entity),
			slog.Any("other", result.Entity),
			slog.Float64("toi", result.TOI),
		)
	}
}

// sweep moves the box of the collider along the displacement and finds the
// earliest impact against any other non trigger collider, by raycasting the
// center of the box against the other boxes expanded by its half size.
func (pw *World) sweep(w *rigid.World, entity rigid.EntityId, col *Collider, start gm.AABB, displacement gm.Vec3) CCDResult {
	length := displacement.Length()
	if length < 1e-9 {
		return CCDResult{}
	}

	swept := start.Union(start.Translate(displacement))
	center := start.Center()
	halfSize := start.HalfSize()

	ray := gm.Ray{Origin: center, Direction: displacement.Mul(1 / length)}

	var best CCDResult

	transforms := rigid.GetComponentArray[rigid.Transform](w)
	colliders := rigid.GetComponentArray[Collider](w)

	for idx := range colliders.Size() {
		other := colliders.GetEntity(idx)
		if other == entity {
			continue
		}

		otherCol := colliders.Data(idx)
		if otherCol.IsTrigger || !col.CanCollideWith(otherCol) {
			continue
		}

		otherTr := transforms.Get(other)
		if otherTr == nil {
			continue
		}

		otherAABB := otherCol.WorldAABB(*otherTr)
		if !swept.Overlaps(otherAABB) {
			continue
		}

		minkowski := otherAABB.Expand(halfSize)

		// already overlapping at the start, leave it to the discrete phase
		if minkowski.Contains(center) {
			continue
		}

		hit := collision.RaycastAABB(ray, minkowski)
		if !hit.Hit || hit.Distance > length {
			continue
		}

		toi := hit.Distance / length
		if best.Hit && toi >= best.TOI {
			continue
		}

		best = CCDResult{
			Hit:    true,
			TOI:    toi,
			Point:  hit.Point.Sub(hit.Normal.MulEach(halfSize)),
			Normal: hit.Normal,
			Entity: other,
		}
	}

	return best
}
