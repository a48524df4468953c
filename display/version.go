package display

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/chriso345/clifford/errors"
	"github.com/chriso345/clifford/schema"
)

// readBuildInfo is mockable for testing.
var readBuildInfo = debug.ReadBuildInfo

// BuildVersion returns "<name> v<version>" for cmd. Without a declared
// version it falls back to the main module version from the build info.
func BuildVersion(cmd schema.Command) string {
	name := cmd.Name
	if name != "" {
		name = name + " "
	}

	version := cmd.Version
	if version == "" {
		infered, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = infered
	}

	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := readBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v"), nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
