// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the auth and
// product services: the request identity context key, JWT session token
// issuing and validation, bcrypt password hashing, session cookie handling,
// JSON response writing, token digests and the resty HTTP client used by
// outbound adapters.
package utils
