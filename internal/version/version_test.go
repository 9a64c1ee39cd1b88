// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	// Builds made outside the release tooling carry no version.
	require.Equal(t, "dev", Current())

	version = "v0.3.0"
	t.Cleanup(func() { version = "" })
	require.Equal(t, "v0.3.0", Current())
}

func TestLibrary(t *testing.T) {
	name, ver := Library()
	require.Equal(t, "gemini-dispatch", name)
	require.NotEmpty(t, ver)
}
