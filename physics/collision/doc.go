// Package collision contains the geometric intersection tests used by the
// physics engine: box, sphere and capsule overlap tests that report a contact
// normal and penetration depth, and ray casts.
//
// All functions are pure. Contact normals always point from the first shape
// towards the second shape. Moving the first shape by -normal*penetration (or
// the second by +normal*penetration) separates both shapes.
package collision
