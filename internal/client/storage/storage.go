// Package storage is the client's persistent auth storage: four named slots
// holding the access token, the serialized user, the saved login name and
// the transient Kakao register token.
//
// Every operation is best effort. Backend faults (disk full, locked
// database, unreachable redis) are logged and never returned; a failed read
// looks exactly like an empty slot. Callers therefore treat storage as
// "always available, possibly empty".
//
// The backend is chosen once, at construction time (see Open):
//
//	sqlite  local database file, migrations applied on open (default)
//	redis   shared key/value server
//	memory  process-local map
//	none    no persistence at all; reads are always empty
package storage

import "context"

// Slot names a storage cell. The values double as the persisted keys.
type Slot string

const (
	SlotToken         Slot = "auth_token"
	SlotUser          Slot = "auth_user"
	SlotSavedName     Slot = "saved_name"
	SlotRegisterToken Slot = "register_token"
)

// AllSlots lists every slot, in a stable order.
var AllSlots = []Slot{SlotToken, SlotUser, SlotSavedName, SlotRegisterToken}

// Changes is a batch of writes applied as one unit by Storage.Update.
// Removals are applied after sets; a slot named in both ends up removed.
type Changes struct {
	Set    map[Slot]string
	Remove []Slot
}

// Storage is the best-effort slot store.
type Storage interface {
	Get(ctx context.Context, slot Slot) (string, bool)
	Set(ctx context.Context, slot Slot, value string)
	Remove(ctx context.Context, slots ...Slot)
	// Update applies all changes or, if the backend fails midway, none of
	// them. Backends without transactions document their weaker guarantee.
	Update(ctx context.Context, changes Changes)
}

func slotKeys(slots []Slot) []string {
	keys := make([]string, len(slots))
	for i, s := range slots {
		keys[i] = string(s)
	}
	return keys
}
