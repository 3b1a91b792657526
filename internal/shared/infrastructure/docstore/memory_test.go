package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAssignsDistinctIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id1, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)
	id2, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)

	assert.NotEmpty(t, id1)
	assert.NotEqual(t, id1, id2)
}

func TestMemoryStoreGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)

	doc, err := store.Get(ctx, "things", id)
	require.NoError(t, err)
	assert.Equal(t, id, doc.ID)
	assert.JSONEq(t, `{"name":"a"}`, string(doc.Data))

	_, err = store.Get(ctx, "things", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, "journeys", []byte(`{"category":"beginner","duration":15,"featured":true}`))
	require.NoError(t, err)
	_, err = store.Create(ctx, "journeys", []byte(`{"category":"advanced","duration":30,"featured":false}`))
	require.NoError(t, err)

	all, err := store.List(ctx, "journeys")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	beginners, err := store.List(ctx, "journeys", Filter{Field: "category", Value: "beginner"})
	require.NoError(t, err)
	require.Len(t, beginners, 1)

	featured, err := store.List(ctx, "journeys", Filter{Field: "featured", Value: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)

	short, err := store.List(ctx, "journeys", Filter{Field: "duration", Value: 15})
	require.NoError(t, err)
	require.Len(t, short, 1)

	none, err := store.List(ctx, "journeys",
		Filter{Field: "category", Value: "beginner"},
		Filter{Field: "featured", Value: false},
	)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStoreListEmptyCollection(t *testing.T) {
	store := NewMemoryStore()

	docs, err := store.List(context.Background(), "empty")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStoreListStableOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Create(ctx, "things", []byte(`{"n":1}`))
		require.NoError(t, err)
	}

	first, err := store.List(ctx, "things")
	require.NoError(t, err)
	second, err := store.List(ctx, "things")
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, "things", id, []byte(`{"name":"b"}`)))

	doc, err := store.Get(ctx, "things", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"b"}`, string(doc.Data))

	err = store.Update(ctx, "things", "missing", []byte(`{}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.Create(ctx, "things", []byte(`{"name":"a"}`))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "things", id))

	_, err = store.Get(ctx, "things", id)
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, "things", id)
	assert.ErrorIs(t, err, ErrNotFound)
}
