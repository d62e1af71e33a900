// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenDigest returns the hex-encoded SHA-256 digest of a signed session
// token. Revocation backends key their entries by this digest so that raw
// bearer credentials never reach Redis or the revoked_tokens table.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
