package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	st := NewMemorySessionStore()
	ctx := context.Background()

	got, err := st.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, st.Save(ctx, &Session{UserID: 1, State: StateFlightSearch}))

	got, err = st.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StateFlightSearch, got.State)

	require.NoError(t, st.Delete(ctx, 1))
	got, err = st.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySessionStoreReturnsCopies(t *testing.T) {
	st := NewMemorySessionStore()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, &Session{UserID: 1, State: StateFlightSearch}))

	a, err := st.Get(ctx, 1)
	require.NoError(t, err)
	a.State = StateSummary

	b, err := st.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StateFlightSearch, b.State)
}
