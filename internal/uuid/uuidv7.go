// Package uuid generates the opaque identifiers assigned to holdings.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a time-ordered UUIDv7 string. Ids are never reused: the
// timestamp prefix moves forward and the remaining bits are random.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
