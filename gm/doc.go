// Package gm (stands for geometry math) provides the geometry primitives used
// by the physics engine.
//
// It includes a 3d vector type called Vec3, an axis aligned bounding box AABB,
// a Ray, a 3x3 rotation matrix Mat3 built from euler angles, and a type named
// Rad to represent angle values in radian.
package gm
