// Package buildinfo holds version metadata stamped in at build time.
//
//	go build -ldflags "-X github.com/matzehuels/nfsf/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/nfsf/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/nfsf/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/nfsf
package buildinfo

import "fmt"

// Values replaced via -ldflags -X. Unstamped builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line description, e.g. "v1.2.0 (abc1234, 2026-01-02)".
// Fields that were not stamped are left out.
func String() string {
	s := Version
	if s == "" {
		s = "dev"
	}
	switch {
	case Commit != "none" && Commit != "" && Date != "unknown" && Date != "":
		return fmt.Sprintf("%s (%s, %s)", s, Commit, Date)
	case Commit != "none" && Commit != "":
		return fmt.Sprintf("%s (%s)", s, Commit)
	}
	return s
}

// Template returns the --version template for cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
