// Package entities contains core business entities.
package entities

// User is a domain representation of a registered person.
// Name is immutable after creation; DisplayName is the only mutable field.
type User struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	CreationTime string `json:"creation_time"`
}

// UserUpdate carries the mutable part of a user update request.
// A nil DisplayName means the field was absent from the payload; the stored
// display name is cleared in that case, matching the historical semantics.
type UserUpdate struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
}
