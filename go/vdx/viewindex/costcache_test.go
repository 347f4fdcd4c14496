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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewdex/viewdex/go/vdx/vderrors"
)

func TestCostCacheReuse(t *testing.T) {
	cc := newCostCache(4, 10*time.Second)
	clock := time.Unix(1000, 0)
	cc.now = func() time.Time { return clock }

	calls := 0
	compute := func() (float64, error) {
		calls++
		return 42, nil
	}
	masks := MaskVector{MaskEquality}

	cost, err := cc.estimate(masks, compute)
	require.NoError(t, err)
	assert.Equal(t, 42.0, cost)
	assert.Equal(t, 1, calls)

	// still live just before the age limit
	clock = clock.Add(10*time.Second - time.Nanosecond)
	cost, err = cc.estimate(masks, compute)
	require.NoError(t, err)
	assert.Equal(t, 42.0, cost)
	assert.Equal(t, 1, calls)

	// aged out: recomputed and re-stamped
	clock = clock.Add(time.Nanosecond)
	_, err = cc.estimate(masks, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCostCacheKeyedByMasks(t *testing.T) {
	cc := newCostCache(4, 10*time.Second)

	calls := 0
	compute := func() (float64, error) {
		calls++
		return float64(calls), nil
	}

	a, err := cc.estimate(MaskVector{MaskEquality}, compute)
	require.NoError(t, err)
	b, err := cc.estimate(MaskVector{MaskRangeStart}, compute)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, calls)
}

func TestCostCacheErrorNotCached(t *testing.T) {
	cc := newCostCache(4, 10*time.Second)
	masks := MaskVector{MaskEquality}

	calls := 0
	_, err := cc.estimate(masks, func() (float64, error) {
		calls++
		return 0, vderrors.New(vderrors.CodeInternal, "boom")
	})
	require.Error(t, err)

	cost, err := cc.estimate(masks, func() (float64, error) {
		calls++
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, cost)
	assert.Equal(t, 2, calls)
}

func TestCostCacheEviction(t *testing.T) {
	cc := newCostCache(2, 10*time.Second)

	for i, masks := range []MaskVector{
		{MaskEquality},
		{MaskRangeStart},
		{MaskRangeEnd},
	} {
		cost, err := cc.estimate(masks, func() (float64, error) { return float64(i), nil })
		require.NoError(t, err)
		assert.Equal(t, float64(i), cost)
	}
	assert.Equal(t, 2, cc.entries.Len())
}
