package physics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/rigid"
	"github.com/oliverbestmann/rigid/gm"
)

// Projection maps world space orthographically onto the screen.
type Projection struct {
	// View rotates world space into view space. The view looks along -Z
	// with +Y pointing up on the screen.
	View gm.Mat3

	// Center is the world point shown in the center of the screen.
	Center gm.Vec3

	// Scale in pixels per world unit.
	Scale float64

	ScreenWidth, ScreenHeight float64
}

func (p Projection) Project(point gm.Vec3) (x, y float32) {
	v := p.View.Transform(point.Sub(p.Center))

	x = float32(p.ScreenWidth/2 + v.X*p.Scale)
	y = float32(p.ScreenHeight/2 - v.Y*p.Scale)
	return x, y
}

type debugColor struct {
	R, G, B, A float32
}

var (
	debugColorDynamic    = debugColor{G: 1, A: 1}
	debugColorStatic     = debugColor{R: 0.6, G: 0.6, B: 0.6, A: 1}
	debugColorSleeping   = debugColor{G: 0.4, B: 0.8, A: 1}
	debugColorTrigger    = debugColor{R: 1, G: 1, A: 0.5}
	debugColorContact    = debugColor{R: 1, A: 1}
	debugColorConstraint = debugColor{R: 1, G: 0.75, A: 1}
)

// DebugDraw draws the outlines of all colliders, the contacts of the last
// step and all constraints onto the image.
func DebugDraw(dst *ebiten.Image, w *rigid.World, pw *World, projection Projection) {
	d := debugImage{Image: dst, Projection: projection}

	colliders := rigid.GetComponentArray[Collider](w)
	transforms := rigid.GetComponentArray[rigid.Transform](w)
	bodies := rigid.GetComponentArray[RigidBody](w)

	for entity, col := range colliders.All() {
		tr := transforms.Get(entity)
		if tr == nil {
			continue
		}

		color := debugColorDynamic

		rb := bodies.Get(entity)
		switch {
		case col.IsTrigger:
			color = debugColorTrigger
		case rb == nil || rb.InvMass() == 0:
			color = debugColorStatic
		case rb.IsSleeping:
			color = debugColorSleeping
		}

		for _, shape := range col.Shapes() {
			d.drawShape(shape.toWorld(*tr), color)
		}
	}

	for _, pair := range pw.CollisionPairs() {
		trA, trB := transforms.Get(pair.EntityA), transforms.Get(pair.EntityB)
		if trA == nil || trB == nil {
			continue
		}

		mid := trA.Translation.Add(trB.Translation).Mul(0.5)
		d.drawLine(mid, mid.Add(pair.Normal.Mul(0.5)), debugColorContact)
	}

	for _, constraint := range pw.constraints.All() {
		trA, trB := transforms.Get(constraint.EntityA), transforms.Get(constraint.EntityB)
		if trA == nil || trB == nil || constraint.Disabled {
			continue
		}

		d.drawLine(
			trA.TransformPoint(constraint.AnchorA),
			trB.TransformPoint(constraint.AnchorB),
			debugColorConstraint,
		)
	}
}

type debugImage struct {
	Image      *ebiten.Image
	Projection Projection
}

func (d debugImage) stroke(p *vector.Path, color debugColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(color.R*color.A, color.G*color.A, color.B*color.A, color.A)
	vector.StrokePath(d.Image, p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) drawLine(a, b gm.Vec3, color debugColor) {
	var p vector.Path
	p.MoveTo(d.Projection.Project(a))
	p.LineTo(d.Projection.Project(b))
	d.stroke(&p, color)
}

func (d debugImage) drawCircle(center gm.Vec3, radius float64, color debugColor) {
	x, y := d.Projection.Project(center)

	var p vector.Path
	p.Arc(x, y, float32(radius*d.Projection.Scale), 0, 2*math.Pi, vector.Clockwise)
	p.Close()
	d.stroke(&p, color)
}

func (d debugImage) drawShape(shape worldShape, color debugColor) {
	switch shape.Type {
	case ShapeSphere:
		d.drawCircle(shape.Sphere.Center, shape.Sphere.Radius, color)

	case ShapeCapsule:
		d.drawCircle(shape.Capsule.A, shape.Capsule.Radius, color)
		d.drawCircle(shape.Capsule.B, shape.Capsule.Radius, color)
		d.drawLine(shape.Capsule.A, shape.Capsule.B, color)

	default:
		d.drawBox(shape.AABB, color)
	}
}

func (d debugImage) drawBox(box gm.AABB, color debugColor) {
	corner := func(idx int) gm.Vec3 {
		pick := func(bit int, lo, hi float64) float64 {
			if idx&bit != 0 {
				return hi
			}

			return lo
		}

		return gm.Vec3{
			X: pick(1, box.Min.X, box.Max.X),
			Y: pick(2, box.Min.Y, box.Max.Y),
			Z: pick(4, box.Min.Z, box.Max.Z),
		}
	}

	var p vector.Path

	// the twelve edges connect corners that differ in exactly one bit
	for a := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if a&bit != 0 {
				continue
			}

			p.MoveTo(d.Projection.Project(corner(a)))
			p.LineTo(d.Projection.Project(corner(a | bit)))
		}
	}

	d.stroke(&p, color)
}
