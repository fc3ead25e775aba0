// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyFragments is the obfuscated form of an encrypted API key: the raw bytes
// of the encrypted payload cut into three contiguous ranges, each one
// base64-encoded on its own. Any part may be empty.
type KeyFragments struct {
	Part1 string
	Part2 string
	Part3 string
}

// IsEmpty reports whether all three fragments are empty.
func (f KeyFragments) IsEmpty() bool {
	return f.Part1 == "" && f.Part2 == "" && f.Part3 == ""
}

// BuildMetadata is written next to the embedded fragments by the key
// embedder. HasEmbeddedKey tells the resolver whether the fragments are
// worth attempting at all.
type BuildMetadata struct {
	// BuildTime is an RFC 3339 timestamp in UTC.
	BuildTime      string
	Version        string
	HasEmbeddedKey bool
}

// KeySource names the place an API key was (or would be) resolved from.
type KeySource string

const (
	KeySourceOverride KeySource = "override"
	KeySourceEmbedded KeySource = "embedded"
	KeySourceNone     KeySource = "none"
)
