// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

// Package version reports the library name and version advertised in
// diagnostic headers and by the CLI.
package version

// LibraryName identifies this library in User-Agent style headers.
const LibraryName = "gemini-dispatch"

// version is populated by the Go linker from the git tag.
var version string

// Current returns the build version, or "dev" for builds made outside the
// release tooling.
func Current() string {
	if version == "" {
		return "dev"
	}
	return version
}

// Library returns the name/version pair used for diagnostic headers.
func Library() (name, ver string) {
	return LibraryName, Current()
}
