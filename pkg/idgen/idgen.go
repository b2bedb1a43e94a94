// Package idgen encodes database primary keys into short opaque public IDs
// and back. Each entity kind carries a type tag so a decoded ID can be
// checked against the entity it is used for.
package idgen

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

var sqidsEncoder *sqids.Sqids

// Entity type tags mixed into every public ID.
const (
	EntityTypeUser       uint64 = 1
	EntityTypeArticle    uint64 = 2
	EntityTypeCourse     uint64 = 3
	EntityTypeEnrollment uint64 = 4
)

// InitSqidsEncoder initializes the package-level encoder. Must be called once
// during startup before any ID is generated or decoded.
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		},
	)
	if err != nil {
		return fmt.Errorf("failed to initialize sqids encoder: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID encodes a database ID together with its entity type tag.
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("sqids encoder not initialized")
	}
	id, err := sqidsEncoder.Encode([]uint64{uint64(dbID), entityType})
	if err != nil {
		return "", fmt.Errorf("failed to encode public ID: %w", err)
	}
	return id, nil
}

// DecodePublicID decodes a public ID back into its database ID and type tag.
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("sqids encoder not initialized")
	}
	numbers := sqidsEncoder.Decode(publicID)
	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("public ID %q did not decode to 2 numbers (got %d)", publicID, len(numbers))
	}
	return uint(numbers[0]), numbers[1], nil
}

// DecodePublicIDBatch decodes a slice of public IDs, failing on the first bad one.
func DecodePublicIDBatch(publicIDs []string) ([]uint, error) {
	if publicIDs == nil {
		return nil, nil
	}
	dbIDs := make([]uint, len(publicIDs))
	for i, publicID := range publicIDs {
		dbID, _, err := DecodePublicID(publicID)
		if err != nil {
			return nil, fmt.Errorf("failed to decode public ID %q: %w", publicID, err)
		}
		dbIDs[i] = dbID
	}
	return dbIDs, nil
}
