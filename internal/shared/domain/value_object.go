package domain

// ValueObject represents an immutable domain concept defined by its attributes.
type ValueObject interface {
	Equals(other ValueObject) bool
}

// UserID is the opaque scope token issued by the auth provider. Every
// per-user query, mutation and cache key is partitioned by this value.
type UserID struct {
	value string
}

// NewUserID creates a UserID from its string form.
func NewUserID(value string) UserID {
	return UserID{value: value}
}

// String returns the string representation of the UserID.
func (u UserID) String() string {
	return u.value
}

// Equals checks if two UserIDs are equal.
func (u UserID) Equals(other ValueObject) bool {
	if otherUserID, ok := other.(UserID); ok {
		return u.value == otherUserID.value
	}
	return false
}

// IsEmpty returns true if no user is associated with this token.
func (u UserID) IsEmpty() bool {
	return u.value == ""
}
