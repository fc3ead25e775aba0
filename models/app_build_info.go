// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Version, date and commit are injected by linker flags; the key metadata
// comes from the artifact generated by the key embedder. Together they are
// shown by the `version` command and the TUI about screen.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
	keyMetadata  BuildMetadata
	keySource    KeySource
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string, keyMetadata BuildMetadata, keySource KeySource) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
		keyMetadata:  keyMetadata,
		keySource:    keySource,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// KeyMetadata returns the metadata written by the key embedder.
func (a AppBuildInfo) KeyMetadata() BuildMetadata {
	return a.keyMetadata
}

// KeySource reports where the active API key came from.
func (a AppBuildInfo) KeySource() KeySource {
	return a.keySource
}
