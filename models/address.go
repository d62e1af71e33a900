// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Address is a delivery address owned by exactly one account.
// It has no lifecycle outside of its owner's address list.
type Address struct {
	ID        uuid.UUID `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"isDefault"`
}

// Addresses is the ordered address list of an account. It is persisted as a
// single JSONB column of the owner row.
type Addresses []Address

// Value implements driver.Valuer. A nil list is stored as an empty JSON array.
func (a Addresses) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB input.
func (a *Addresses) Scan(src any) error {
	return scanJSONList(src, (*[]Address)(a))
}

// Index returns the position of the address with the given id or -1.
func (a Addresses) Index(id uuid.UUID) int {
	for i, addr := range a {
		if addr.ID == id {
			return i
		}
	}
	return -1
}

func scanJSONList[T any](src any, dst *[]T) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*dst = []T{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}

	list := make([]T, 0)
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("error decoding JSON column: %w", err)
	}
	*dst = list
	return nil
}
