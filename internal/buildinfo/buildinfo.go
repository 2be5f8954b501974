// Package buildinfo contains build-time metadata separate from user
// configuration.
package buildinfo

// Context contains build-time metadata that is not user-configurable. The
// values are injected at build time through -ldflags.
type Context struct {
	// Version holds the Git version tag from build
	Version string

	// BuildDate is the time when the binary was built
	BuildDate string
}

var (
	version   = "dev"
	buildDate = "unknown"
)

// Current returns the build context for this binary.
func Current() Context {
	return Context{
		Version:   version,
		BuildDate: buildDate,
	}
}
