// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// 🏷️ BuildInfo is what the binary knows about how it was built
type BuildInfo struct {
	Version   string
	Revision  string
	Time      string
	Modified  bool
	GoVersion string
	Platform  string
}

// readBuildInfo fills BuildInfo from the module build info, "dev" when unversioned
func readBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   "dev",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortRevision is the first 12 characters of the commit.
func (b BuildInfo) ShortRevision() string {
	if len(b.Revision) > 12 {
		return b.Revision[:12]
	}
	return b.Revision
}

// String renders the --version output. Lines for unknown values are left out.
func (b BuildInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🚀 mmv %s\n", b.Version)
	if rev := b.ShortRevision(); rev != "" {
		if b.Modified {
			rev += " (modified)"
		}
		fmt.Fprintf(&sb, "revision: %s\n", rev)
	}
	if b.Time != "" {
		fmt.Fprintf(&sb, "built:    %s\n", b.Time)
	}
	fmt.Fprintf(&sb, "go:       %s %s\n", b.GoVersion, b.Platform)
	return sb.String()
}

// FormatVersion returns the version text of the running binary
func FormatVersion() string {
	return readBuildInfo().String()
}
