// Package physics simulates rigid bodies on top of a rigid.World.
//
// Entities take part in the simulation if they have a rigid.Transform and a
// RigidBody, a Collider or both. A World advances the simulation in fixed
// steps. Each step integrates forces, sweeps fast bodies, detects and
// resolves contacts, solves constraints and finally keeps bodies above the
// ground plane.
package physics
