package utils

import "github.com/google/uuid"

// UUIDGenerator hands out record identifiers. Version 7 UUIDs sort by
// creation time, which keeps freshly added entries at the end of rowid and
// id orderings alike.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
