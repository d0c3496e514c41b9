package rigid

import (
	"github.com/oliverbestmann/rigid/gm"
)

// Transform places an entity in the world.
//
// Rotation holds euler angles in degrees, applied in the order Y, X, Z.
// Scale is not uniform, a zero scale collapses the entity, use
// TransformFromTranslation to get a unit scale.
type Transform struct {
	Translation gm.Vec3
	Rotation    gm.Vec3
	Scale       gm.Vec3
}

func TransformFromTranslation(translation gm.Vec3) Transform {
	return Transform{
		Translation: translation,
		Scale:       gm.VecOne,
	}
}

func (t Transform) WithScale(scale gm.Vec3) Transform {
	t.Scale = scale
	return t
}

func (t Transform) WithRotation(degrees gm.Vec3) Transform {
	t.Rotation = degrees
	return t
}

// RotationMatrix returns the rotation part of the transform.
func (t Transform) RotationMatrix() gm.Mat3 {
	if t.Rotation.IsZero() {
		return gm.IdentityMat3()
	}

	return gm.EulerRotation(t.Rotation)
}

// TransformPoint maps a point from local into world space.
func (t Transform) TransformPoint(local gm.Vec3) gm.Vec3 {
	return t.TransformVec(local).Add(t.Translation)
}

// TransformVec maps a vector from local into world space, ignoring translation.
func (t Transform) TransformVec(local gm.Vec3) gm.Vec3 {
	scaled := local.MulEach(t.Scale)
	if t.Rotation.IsZero() {
		return scaled
	}

	return t.RotationMatrix().Transform(scaled)
}
