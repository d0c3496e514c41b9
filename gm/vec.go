package gm

import (
	"fmt"
	"math"
)

type ScalarTypes interface {
	float32 | float64 | int32
}

type Vec3f = vec3[float32]
type Vec3 = vec3[float64]

type IVec3 = vec3[int32]

var VecZero = Vec3{}
var VecOne = Vec3{X: 1, Y: 1, Z: 1}

var AxisX = Vec3{X: 1}
var AxisY = Vec3{Y: 1}
var AxisZ = Vec3{Z: 1}

func VecOf[S ScalarTypes](x, y, z S) vec3[S] {
	return vec3[S]{X: x, Y: y, Z: z}
}

func VecSplat[S ScalarTypes](value S) vec3[S] {
	return vec3[S]{X: value, Y: value, Z: value}
}

type vec3[S ScalarTypes] struct {
	X, Y, Z S
}

func (v vec3[S]) Add(other vec3[S]) vec3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v vec3[S]) Sub(other vec3[S]) vec3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v vec3[S]) Mul(scalar S) vec3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v vec3[S]) MulEach(other vec3[S]) vec3[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v vec3[S]) DivEach(other vec3[S]) vec3[S] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

func (v vec3[S]) Neg() vec3[S] {
	return vec3[S]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v vec3[S]) Dot(other vec3[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v vec3[S]) Cross(other vec3[S]) vec3[S] {
	return vec3[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Abs returns the vector with each component replaced by its absolute value.
func (v vec3[S]) Abs() vec3[S] {
	return vec3[S]{X: abs(v.X), Y: abs(v.Y), Z: abs(v.Z)}
}

// Min returns the component wise minimum of both vectors.
func (v vec3[S]) Min(other vec3[S]) vec3[S] {
	return vec3[S]{X: min(v.X, other.X), Y: min(v.Y, other.Y), Z: min(v.Z, other.Z)}
}

// Max returns the component wise maximum of both vectors.
func (v vec3[S]) Max(other vec3[S]) vec3[S] {
	return vec3[S]{X: max(v.X, other.X), Y: max(v.Y, other.Y), Z: max(v.Z, other.Z)}
}

// MinComponent returns the smallest of the three components.
func (v vec3[S]) MinComponent() S {
	return min(v.X, v.Y, v.Z)
}

// MaxComponent returns the largest of the three components.
func (v vec3[S]) MaxComponent() S {
	return max(v.X, v.Y, v.Z)
}

// Axis returns the component at the given index, 0 is X, 1 is Y and 2 is Z.
func (v vec3[S]) Axis(idx int) S {
	switch idx {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (v vec3[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}

// Normalized returns the unit vector pointing in the same direction.
// The zero vector stays the zero vector.
func (v vec3[S]) Normalized() vec3[S] {
	length := v.Length()
	if length == 0 {
		return v
	}

	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

func (v vec3[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

func (v vec3[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v vec3[S]) DistanceTo(other vec3[S]) S {
	return v.Sub(other).Length()
}

func (v vec3[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func abs[S ScalarTypes](value S) S {
	if value < 0 {
		return -value
	}

	return value
}
