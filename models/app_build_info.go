// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build-time metadata injected with -ldflags.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo fills empty values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	return AppBuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// String renders the one-line footer shown by the client.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (%s, %s)", a.Version, a.Commit, a.Date)
}
