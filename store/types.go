//nolint
package store

import tipping "github.com/pythocooks/onlyagents-tipping"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = tipping.ReadOnlyKVStore
type SetDeleter = tipping.SetDeleter
type KVStore = tipping.KVStore
type Batch = tipping.Batch
type CacheableKVStore = tipping.CacheableKVStore
type KVCacheWrap = tipping.KVCacheWrap
