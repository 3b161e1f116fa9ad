package usecase

import (
	"aimlink-client/internal/core/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresSession(t *testing.T) {
	store := &fakeStore{}
	uc := NewLoginUseCase(&fakeBackend{}, store)

	session, err := uc.Execute(context.Background(), " admin@aimlinkproperties.com ", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	require.NotNil(t, store.session)
	assert.Equal(t, "jwt-token", store.session.Token)

	view, err := NewGetDashboardUseCase(store, &fakeBackend{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@aimlinkproperties.com", view.Email)
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	store := &fakeStore{}
	uc := NewLoginUseCase(&fakeBackend{}, store)

	_, err := uc.Execute(context.Background(), "admin@aimlinkproperties.com", "wrong")
	require.Error(t, err)
	assert.Nil(t, store.session)
	assert.Equal(t, "Invalid email or password", domain.UserMessage(err, domain.MsgInvalidCredentials))

	_, err = uc.Execute(context.Background(), "", "")
	assert.EqualError(t, err, domain.MsgEnterCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	store := loggedIn()
	require.NoError(t, NewLogoutUseCase(store).Execute(context.Background()))
	assert.Nil(t, store.session)

	current, err := NewCurrentSessionUseCase(store).Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAdminCallsRequireSession(t *testing.T) {
	backend := &fakeBackend{}
	_, err := NewGetDashboardUseCase(&fakeStore{}, backend).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = NewListLeadsUseCase(&fakeStore{}, backend).Execute(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Equal(t, "Not authenticated", domain.UserMessage(err, "x"))
}

func TestSessionExpiredClearsStore(t *testing.T) {
	store := loggedIn()
	backend := &fakeBackend{failWith: errExpired}

	_, err := NewListLeadsUseCase(store, backend).Execute(context.Background(), domain.LeadPending)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.Nil(t, store.session)
	assert.Equal(t, 1, store.cleared)
}

func TestOtherErrorsKeepSession(t *testing.T) {
	store := loggedIn()
	backend := &fakeBackend{failWith: &domain.APIError{StatusCode: 500}}

	_, err := NewGetDashboardUseCase(store, backend).Execute(context.Background())
	require.Error(t, err)
	assert.NotNil(t, store.session)
}
