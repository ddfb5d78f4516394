package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vip25/site/model"
	"github.com/vip25/site/store"
)

func TestUnavailableStore(t *testing.T) {
	st := store.Unavailable()
	ctx := context.Background()

	assert.False(t, st.Available())

	err := st.InsertInquiry(ctx, model.ClientInquiry{Name: "x"})
	require.ErrorIs(t, err, store.ErrUnavailable)

	err = st.InsertApplication(ctx, model.CareerApplication{Fullname: "x"})
	require.ErrorIs(t, err, store.ErrUnavailable)

	inquiries, err := st.ListInquiries(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.Nil(t, inquiries)

	applications, err := st.ListApplications(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)
	assert.Nil(t, applications)
}
