package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyKVStoreIsBlackHole(t *testing.T) {
	db := EmptyKVStore{}
	require.NoError(t, db.Set([]byte("k"), []byte("v")))

	v, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, v)

	ok, err := db.Has([]byte("k"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogableStoreRecordsOps(t *testing.T) {
	db, log := LogableStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("b"), []byte("2")))
	require.NoError(t, db.Delete([]byte("a")))

	ops := log.ShowOps()
	require.Len(t, ops, 3)
	assert.True(t, ops[0].IsSetOp())
	assert.True(t, ops[1].IsSetOp())
	assert.False(t, ops[2].IsSetOp())
	assert.Equal(t, []byte("a"), ops[0].Key())
	assert.Equal(t, []byte("b"), ops[1].Key())
	assert.Equal(t, []byte("a"), ops[2].Key())
}

func TestNonAtomicBatchAppliesOnWrite(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("stale"), []byte("x")))

	batch := NewNonAtomicBatch(db)
	require.NoError(t, batch.Set([]byte("fresh"), []byte("y")))
	require.NoError(t, batch.Delete([]byte("stale")))

	// nothing is applied until Write
	assertHas(t, db, []byte("fresh"), false)
	assertHas(t, db, []byte("stale"), true)

	require.NoError(t, batch.Write())
	assertGet(t, db, []byte("fresh"), []byte("y"))
	assertHas(t, db, []byte("stale"), false)

	// writing drains the collected operations
	assert.Len(t, batch.ShowOps(), 0)
}

func TestOpApply(t *testing.T) {
	db := MemStore()

	require.NoError(t, SetOp([]byte("k"), []byte("v")).Apply(db))
	assertGet(t, db, []byte("k"), []byte("v"))

	require.NoError(t, DelOp([]byte("k")).Apply(db))
	assertHas(t, db, []byte("k"), false)

	var unknown Op
	if err := unknown.Apply(db); err == nil {
		t.Fatal("applying an operation of unknown kind must fail")
	}
}
