package mapping

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/sync/singleflight"

	"github.com/vectorframe/column/core"
)

// Cache is the concurrent merge cache of spec §4.8: it guarantees at most
// one concurrent Merge computation per distinct pair of outer and inner
// mapping identities, while every caller racing on that pair observes the
// same result (or the same error). A Cache is safe for concurrent use. It
// retains no results: once the in-flight computation for a pair returns,
// a later Compose of the same pair computes the merge afresh.
type Cache struct {
	group singleflight.Group
}

// NewCache returns an empty merge cache.
func NewCache() *Cache {
	return &Cache{}
}

// identity returns a stable handle for m's backing array: a pointer value
// for the slice header's first element, or 0 for an empty/nil mapping. Two
// Mapping values that start at the same element of the same backing array
// (e.g. the same slice reused) share this handle, matching the Java
// source's array-identity keying (spec §9); Compose pairs it with the
// mapping's length.
func identity(m Mapping) uintptr {
	if len(m) == 0 {
		return 0
	}
	return reflect.ValueOf(m).Pointer()
}

// Compose merges outer and inner exactly as the package-level Merge does,
// but de-duplicates concurrent calls that share both outer's and inner's
// identity and length: the first caller computes the merge and every
// concurrent sibling blocks on and reuses that single computation (spec
// §4.8 steps 1-3). If ctx is
// already done when Compose is called, it fails fast with
// core.ErrExecutionAborted; a cancellation observed by the in-flight
// computation's caller likewise surfaces as core.ErrExecutionAborted to
// every waiter, matching spec §4.8's exceptional-completion propagation.
//
// Complexity: O(len(outer)) amortized across concurrent duplicate callers.
func (c *Cache) Compose(ctx context.Context, outer, inner Mapping) (Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mapping.Cache.Compose: %w: %v", core.ErrExecutionAborted, err)
	}

	key := fmt.Sprintf("%d:%d/%d:%d", identity(outer), len(outer), identity(inner), len(inner))
	v, err, _ := c.group.Do(key, func() (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("mapping.Cache.Compose: %w: %v", core.ErrExecutionAborted, err)
		}
		return Merge(outer, inner), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Mapping), nil
}
