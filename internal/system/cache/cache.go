/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"sync"
	"time"

	"github.com/wso2/identity-user-profile-service/internal/system/log"
)

type item[V any] struct {
	value      V
	expiration time.Time
}

// Cache is a process local TTL cache. Entries are evicted lazily on read.
type Cache[V any] struct {
	name  string
	items map[string]item[V]
	mutex sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a new cache with a TTL (time-to-live)
func NewCache[V any](name string, ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		name:  name,
		items: make(map[string]item[V]),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Set adds an item to the cache
func (c *Cache[V]) Set(key string, value V) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = item[V]{value: value, expiration: c.now().Add(c.ttl)}
}

// Get retrieves an item from the cache
func (c *Cache[V]) Get(key string) (V, bool) {

	c.mutex.RLock()
	entry, found := c.items[key]
	c.mutex.RUnlock()

	var zero V
	if !found {
		return zero, false
	}
	if c.now().After(entry.expiration) {
		log.GetLogger().Debug("Cache entry expired", log.String("cache", c.name), log.String("key", key))
		c.Delete(key)
		return zero, false
	}
	return entry.value, true
}

// Delete removes an item from the cache
func (c *Cache[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]item[V])
}
