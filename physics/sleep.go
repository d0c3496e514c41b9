package physics

import (
	"log/slog"

	"github.com/oliverbestmann/rigid"
)

// UpdateSleep puts bodies to sleep that stayed below the sleep thresholds
// for at least the configured sleep time. Sleeping bodies are skipped by
// integration until they are woken up by a force, an impulse or a contact
// with an awake body.
func (pw *World) UpdateSleep(w *rigid.World, dt float64) {
	if !pw.config.EnableSleep {
		return
	}

	bodies := rigid.GetComponentArray[RigidBody](w)

	for idx := range bodies.Size() {
		rb := bodies.Data(idx)
		if rb.IsStatic || rb.IsSleeping {
			continue
		}

		linearThreshold := rb.SleepLinearThreshold
		if linearThreshold <= 0 {
			linearThreshold = pw.config.SleepLinearThreshold
		}

		angularThreshold := rb.SleepAngularThreshold
		if angularThreshold <= 0 {
			angularThreshold = pw.config.SleepAngularThreshold
		}

		resting := rb.Velocity.LengthSqr() < linearThreshold*linearThreshold &&
			rb.AngularVelocity.LengthSqr() < angularThreshold*angularThreshold

		if !resting {
			rb.SleepTimer = 0
			continue
		}

		rb.SleepTimer += dt
		if rb.SleepTimer < pw.config.SleepTime {
			continue
		}

		rb.IsSleeping = true
		rb.Velocity.X, rb.Velocity.Y, rb.Velocity.Z = 0, 0, 0
		rb.AngularVelocity.X, rb.AngularVelocity.Y, rb.AngularVelocity.Z = 0, 0, 0

		slog.Debug("Body fell asleep", slog.Any("entity", bodies.GetEntity(idx)))
	}
}

// Wake wakes up the body of the entity.
func (pw *World) Wake(w *rigid.World, entity rigid.EntityId) {
	if rb := rigid.GetComponent[RigidBody](w, entity); rb != nil {
		rb.Wake()
	}
}

// IsSleeping reports whether the body of the entity is asleep.
func (pw *World) IsSleeping(w *rigid.World, entity rigid.EntityId) bool {
	rb := rigid.GetComponent[RigidBody](w, entity)
	return rb != nil && rb.IsSleeping
}
