// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new records and
// uploaded file names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// New returns a version 7 UUID, falling back to a random version 4 UUID if
// the clock source fails.
func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// Generate returns New as a string.
func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}
