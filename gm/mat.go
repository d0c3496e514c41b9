package gm

import "github.com/go-gl/mathgl/mgl64"

// Mat3 describes a 3d matrix of float64 values in row major order.
type Mat3 struct {
	XAxis, YAxis, ZAxis Vec3
}

func IdentityMat3() Mat3 {
	return Mat3{
		XAxis: AxisX,
		YAxis: AxisY,
		ZAxis: AxisZ,
	}
}

// ScaleMat3 returns a matrix that scales a Vec3.
func ScaleMat3(scale Vec3) Mat3 {
	return Mat3{
		XAxis: Vec3{X: scale.X},
		YAxis: Vec3{Y: scale.Y},
		ZAxis: Vec3{Z: scale.Z},
	}
}

// EulerRotation returns the rotation matrix for the given euler angles in degrees.
// Rotations are applied in the order yaw (Y), pitch (X), roll (Z), matching the
// TRS order used by Transform.
func EulerRotation(degrees Vec3) Mat3 {
	rx := mgl64.Rotate3DX(mgl64.DegToRad(degrees.X))
	ry := mgl64.Rotate3DY(mgl64.DegToRad(degrees.Y))
	rz := mgl64.Rotate3DZ(mgl64.DegToRad(degrees.Z))
	return mat3Of(ry.Mul3(rx).Mul3(rz))
}

// AxisAngleRotation rotates around the given unit axis.
func AxisAngleRotation(axis Vec3, angle Rad) Mat3 {
	m := mgl64.HomogRotate3D(float64(angle), mgl64.Vec3{axis.X, axis.Y, axis.Z}).Mat3()
	return mat3Of(m)
}

func mat3Of(m mgl64.Mat3) Mat3 {
	row := func(idx int) Vec3 {
		return Vec3{X: m.At(idx, 0), Y: m.At(idx, 1), Z: m.At(idx, 2)}
	}

	return Mat3{XAxis: row(0), YAxis: row(1), ZAxis: row(2)}
}

func (m Mat3) Transform(vec Vec3) Vec3 {
	return Vec3{
		X: m.XAxis.Dot(vec),
		Y: m.YAxis.Dot(vec),
		Z: m.ZAxis.Dot(vec),
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		XAxis: Vec3{X: m.XAxis.X, Y: m.YAxis.X, Z: m.ZAxis.X},
		YAxis: Vec3{X: m.XAxis.Y, Y: m.YAxis.Y, Z: m.ZAxis.Y},
		ZAxis: Vec3{X: m.XAxis.Z, Y: m.YAxis.Z, Z: m.ZAxis.Z},
	}
}

func (m Mat3) Mul(n Mat3) Mat3 {
	nt := n.Transpose()
	return Mat3{
		XAxis: Vec3{X: m.XAxis.Dot(nt.XAxis), Y: m.XAxis.Dot(nt.YAxis), Z: m.XAxis.Dot(nt.ZAxis)},
		YAxis: Vec3{X: m.YAxis.Dot(nt.XAxis), Y: m.YAxis.Dot(nt.YAxis), Z: m.YAxis.Dot(nt.ZAxis)},
		ZAxis: Vec3{X: m.ZAxis.Dot(nt.XAxis), Y: m.ZAxis.Dot(nt.YAxis), Z: m.ZAxis.Dot(nt.ZAxis)},
	}
}

// Inverse returns the inverse of a pure rotation matrix.
func (m Mat3) Inverse() Mat3 {
	return m.Transpose()
}
