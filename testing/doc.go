// Package testing provides test utilities for the seat allocation library.
//
// This package offers helpers for setting up test environments: a canonical
// office fixture (topology plus employee roster) and a types.Logger that
// writes to testing.T. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//	    seatalloctest "github.com/emailanant84-innovation/Hackathon-Seat-Allocation/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    topo, dir := seatalloctest.OfficeFixture(t)
//	    logger := seatalloctest.NewTestLogger(t)
//	    // ...
//	}
package testing
