// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func setBuildVariables(t *testing.T, version, commit, dirty, buildTime string) {
	t.Helper()
	saved := [4]string{Version, GitCommit, GitDirty, BuildTime}
	t.Cleanup(func() {
		Version, GitCommit, GitDirty, BuildTime = saved[0], saved[1], saved[2], saved[3]
	})
	Version, GitCommit, GitDirty, BuildTime = version, commit, dirty, buildTime
}

func TestInfo(t *testing.T) {
	setBuildVariables(t, "1.2.0", "abc1234", "false", "2026-03-01T00:00:00Z")
	if got, want := Info(), "1.2.0 (abc1234, 2026-03-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got, want := Info(), "1.2.0 (abc1234-dirty, 2026-03-01T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestFull(t *testing.T) {
	setBuildVariables(t, "1.2.0", "abc1234", "false", "now")
	full := Full()
	if !strings.HasPrefix(full, Info()) {
		t.Errorf("Full() = %q, want prefix %q", full, Info())
	}
	if !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q, want Go version %s", full, runtime.Version())
	}
}

func TestBuild(t *testing.T) {
	setBuildVariables(t, "1.2.0", "abc1234", "true", "now")
	info := Build()
	if info.Version != "1.2.0" || info.GitCommit != "abc1234" || !info.Dirty {
		t.Errorf("Build() = %+v", info)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Build().Platform = %q", info.Platform)
	}
	if Short() != "1.2.0" {
		t.Errorf("Short() = %q, want 1.2.0", Short())
	}
}
