// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo identifies the sitekeeper binary. cmd/sitekeeper fills it
// from -ldflags variables; `sitekeeper version`, `status` and
// GET /api/version report it. Empty values mean a development build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns the build identity of the running binary.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion is the release tag, e.g. "v1.2.0".
func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

// BuildDate is the build timestamp as passed to the linker.
func (a AppBuildInfo) BuildDate() string { return a.buildDate }

// BuildCommit is the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }
