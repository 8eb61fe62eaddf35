// internal/version/version.go
package version

// Version is the release string reported by --version. Overridable at
// build time:
//
//	go build -ldflags "-X sift/internal/version.Version=v1.2.3"
var Version = "0.1.0"
