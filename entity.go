package rigid

import (
	"log/slog"
	"strconv"
)

// EntityId identifies an entity within a World. Ids are never reused.
type EntityId uint32

const NoEntityId = EntityId(0)

func (e EntityId) String() string {
	return strconv.Itoa(int(e))
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}
