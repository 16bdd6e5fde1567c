// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 identifiers for new records.
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
