package store

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// model is a key/value pair for query expectations, where a nil Value means
// the key must be absent.
type model struct {
	Key   []byte
	Value []byte
}

func pair(k, v []byte) model {
	return model{Key: k, Value: v}
}

type op struct {
	del   bool
	key   []byte
	value []byte
}

func setOp(key, value []byte) op { return op{key: key, value: value} }
func delOp(key []byte) op        { return op{del: true, key: key} }

func (o op) apply(t *testing.T, db KVStore) {
	t.Helper()
	if o.del {
		require.NoError(t, db.Delete(o.key))
	} else {
		require.NoError(t, db.Set(o.key, o.value))
	}
}

func assertGet(t *testing.T, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func assertHas(t *testing.T, db ReadOnlyKVStore, key []byte, want bool) {
	t.Helper()
	got, err := db.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assertGet(t, base, k, nil)
	assertHas(t, base, k, false)
	require.NoError(t, base.Set(k, v))
	assertGet(t, base, k, v)
	assertHas(t, base, k, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGet(t, cache, k, v)
	assertHas(t, cache, k, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assertGet(t, cache, k2, nil)
	assertHas(t, cache, k2, false)
	require.NoError(t, cache.Set(k2, v2))
	assertGet(t, cache, k2, v2)
	assertGet(t, base, k2, nil)
	assertHas(t, cache, k2, true)
	assertHas(t, base, k2, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assertGet(t, base, k, v)
	assertGet(t, base, k2, v2)
	assertHas(t, base, k, true)
	assertHas(t, base, k2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assertGet(t, c2, k, v)
	assertGet(t, c2, k2, v2)
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assertGet(t, c3, k, v)
	assertGet(t, c3, k2, v2)
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assertGet(t, base, k, nil)
	assertGet(t, base, k2, v2)
	assertGet(t, base, k3, nil)

	// and to test devnull....
	require.NoError(t, base.Write())
	assertGet(t, devnull, k2, nil)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := [...]struct {
		parentOps     []op
		childOps      []op
		parentQueries []model // Key is what we query, Value is what we expect
		childQueries  []model // Key is what we query, Value is what we expect
	}{
		// overwrite one, delete another, add a third
		0: {
			[]op{setOp(ks[1], vs[1]), setOp(ks[2], vs[2])},
			[]op{setOp(ks[1], vs[11]), setOp(ks[3], vs[7]), delOp(ks[2])},
			[]model{pair(ks[1], vs[1]), pair(ks[2], vs[2]), pair(ks[3], nil)},
			[]model{pair(ks[1], vs[11]), pair(ks[2], nil), pair(ks[3], vs[7])},
		},
	}

	for i, tc := range cases {
		parent := devnull.CacheWrap()
		for _, o := range tc.parentOps {
			o.apply(t, parent)
		}

		child := parent.CacheWrap()
		for _, o := range tc.childOps {
			o.apply(t, child)
		}

		// now check the parent is unaffected
		for j, q := range tc.parentQueries {
			res, err := parent.Get(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := parent.Has(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// the child shows changes
		for j, q := range tc.childQueries {
			res, err := child.Get(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := child.Has(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// write child to parent and make sure it also shows proper data
		require.NoError(t, child.Write())
		for j, q := range tc.childQueries {
			res, err := parent.Get(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := parent.Has(q.Key)
			require.NoError(t, err, "%d / %d", i, j)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}
	}
}

// TestMemStoreDiscardIsolation makes sure discarded wraps leave the backing
// store untouched while written ones update it.
func TestMemStoreDiscardIsolation(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("init"), []byte("yes")))

	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("scratch"), []byte("data")))
	require.NoError(t, cache.Delete([]byte("init")))
	assertGet(t, cache, []byte("init"), nil)
	cache.Discard()

	assertGet(t, db, []byte("init"), []byte("yes"))
	assertHas(t, db, []byte("scratch"), false)
}

// randKeys returns a slice of count keys, all of length
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}
