// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// BuildInfo carries the link-time metadata of the mempass binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns a BuildInfo with blank values replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orUnknown := func(v string) string {
		if v == "" {
			return unknownBuildValue
		}
		return v
	}

	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the build info the way `mempass version` prints it.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.Version, b.Date, b.Commit)
}
