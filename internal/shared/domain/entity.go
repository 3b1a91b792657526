package domain

import "time"

// Entity represents a domain entity with identity. Identifiers are opaque
// strings; for store-owned records they are assigned by the document store
// on creation and stay empty until then.
type Entity interface {
	ID() string
	CreatedAt() time.Time
	UpdatedAt() time.Time
}

// BaseEntity provides common entity functionality.
type BaseEntity struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
}

// NewBaseEntity creates an entity that has not been persisted yet. The ID
// remains empty until the store assigns one.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		createdAt: now,
		updatedAt: now,
	}
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id string, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e BaseEntity) ID() string           { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// IsPersisted reports whether the store has assigned an identifier.
func (e BaseEntity) IsPersisted() bool { return e.id != "" }

// AssignID records the store-assigned identifier. It is a no-op once an
// identifier is set; identities never change after creation.
func (e *BaseEntity) AssignID(id string) {
	if e.id == "" {
		e.id = id
	}
}

// Touch updates the updatedAt timestamp.
func (e *BaseEntity) Touch() {
	e.updatedAt = time.Now().UTC()
}

// Equals checks if two entities have the same identity.
func (e BaseEntity) Equals(other Entity) bool {
	if other == nil {
		return false
	}
	return e.id != "" && e.id == other.ID()
}
