// Copyright Envoy AI Gateway Authors
// SPDX-License-Identifier: Apache-2.0
// The full text of the Apache license is available in the LICENSE file at
// the root of the repo.

package transport

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// HTTP keep-alive connections are pooled beyond the test lifetime.
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}
