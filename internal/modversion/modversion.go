// Package modversion resolves the version of a dependency module from the
// binary's embedded build info. Factories use it to implement the registry's
// Version hook without every dependency having to export a version constant.
package modversion

import (
	"runtime/debug"
)

// Of returns the version of the dependency with the given module path as
// recorded in the build info, or "unknown" when the binary carries no build
// info or does not depend on the module.
func Of(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
