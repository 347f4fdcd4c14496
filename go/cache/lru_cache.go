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

import (
	lru "github.com/hashicorp/golang-lru"
)

// LRUCache is a thread-safe, bounded, least-recently-used cache.
type LRUCache struct {
	entries  *lru.Cache
	capacity int64
}

var _ Cache = (*LRUCache)(nil)

// NewLRUCache creates a new LRUCache holding at most capacity entries.
func NewLRUCache(capacity int64) *LRUCache {
	entries, err := lru.New(int(capacity))
	if err != nil {
		panic(err)
	}
	return &LRUCache{entries: entries, capacity: capacity}
}

// Get returns the value for the given key, marking it most recently used.
func (c *LRUCache) Get(key string) (interface{}, bool) {
	return c.entries.Get(key)
}

// Set stores a value under the given key, evicting the least recently used
// entry if the cache is full.
func (c *LRUCache) Set(key string, val interface{}) {
	c.entries.Add(key, val)
}

// Delete removes the entry for the given key, if any.
func (c *LRUCache) Delete(key string) {
	c.entries.Remove(key)
}

// Clear removes all entries.
func (c *LRUCache) Clear() {
	c.entries.Purge()
}

// Len returns the number of entries currently cached.
func (c *LRUCache) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries the cache can hold.
func (c *LRUCache) Capacity() int64 {
	return c.capacity
}
