package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time with -ldflags "-X".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s / %s", runtime.GOOS, runtime.GOARCH)
)
