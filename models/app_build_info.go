// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable is reported for build metadata that was not linked in.
const NotAvailable = "N/A"

// AppBuildInfo is the release metadata of the teamvault binary, set with
// -ldflags "-X main.buildVersion=..." and printed by `teamvault version`.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo keeps the given metadata; blank values read as [NotAvailable].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
