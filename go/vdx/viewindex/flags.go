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

	"github.com/spf13/pflag"
)

var (
	costCacheCapacity int64 = 64
	costCacheMaxAge         = 10 * time.Second

	// recursionWarnIterations is the fixpoint iteration count past which
	// a warning is logged. Non-terminating recursive views are bounded
	// only by the caller's context, never by this package.
	recursionWarnIterations = 1000
)

// RegisterFlags installs the package's tunables on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int64Var(&costCacheCapacity, "viewindex-cost-cache-capacity", costCacheCapacity,
		"maximum number of mask vectors a view's cost cache holds before evicting the least recently used")
	fs.DurationVar(&costCacheMaxAge, "viewindex-cost-cache-max-age", costCacheMaxAge,
		"age past which a cached view cost is recomputed")
	fs.IntVar(&recursionWarnIterations, "viewindex-recursion-warn-iterations", recursionWarnIterations,
		"number of fixpoint iterations after which a recursive view scan logs a warning")
}
