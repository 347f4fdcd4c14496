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

package cache

// Cache is a generic interface type for a data structure that keeps recently
// used objects in memory and evicts them when it becomes full.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, val interface{})
	Delete(key string)
	Clear()

	Len() int
	Capacity() int64
}

// NewDefaultCacheImpl returns the default cache implementation, which is a
// thread-safe LRU of the given capacity. A zero capacity returns a cache
// that stores nothing.
func NewDefaultCacheImpl(capacity int64) Cache {
	if capacity == 0 {
		return &nullCache{}
	}
	return NewLRUCache(capacity)
}
