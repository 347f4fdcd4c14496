/*
Copyright 2025 The Viewdex Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package viewindex

import (
	"time"

	"github.com/viewdex/viewdex/go/cache"
	"github.com/viewdex/viewdex/go/vdx/log"
)

// costEntry is a calculated cost value.
type costEntry struct {
	// evaluatedAt is when the cost was calculated.
	evaluatedAt time.Time
	// cost is the calculated cost.
	cost float64
}

// costCache memoizes the cost of scanning a view under a given mask vector.
// Cost estimation requires a full prepare of the rewritten query and the
// same mask vector recurs across repeated optimizer calls for the same
// statement shape, so entries are kept until they age out or are evicted.
//
// The cache is keyed by the mask vector alone and ignores which session is
// asking, even though session-visible statistics can legitimately shift the
// cost. That approximation is deliberate and must not be "fixed" here.
//
// The cache tolerates concurrent use; two callers racing on the same key
// may both compute, and the later store wins.
type costCache struct {
	entries cache.Cache
	maxAge  time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

func newCostCache(capacity int64, maxAge time.Duration) *costCache {
	return &costCache{
		entries: cache.NewDefaultCacheImpl(capacity),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// estimate returns the cached cost for the mask vector if a live entry
// exists, otherwise invokes compute and stores the result stamped "now".
func (cc *costCache) estimate(masks MaskVector, compute func() (float64, error)) (float64, error) {
	key := masks.Key()
	if v, ok := cc.entries.Get(key); ok {
		entry := v.(*costEntry)
		if cc.now().Sub(entry.evaluatedAt) < cc.maxAge {
			return entry.cost, nil
		}
	}
	cost, err := compute()
	if err != nil {
		return 0, err
	}
	log.V(2).Infof("viewindex: computed cost %v for mask vector %v", cost, masks)
	cc.entries.Set(key, &costEntry{evaluatedAt: cc.now(), cost: cost})
	return cost, nil
}
