package usecase

import (
	"aimlink-client/internal/core/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyStep3() domain.Step3 {
	return domain.Step3{Draft: domain.Draft{
		Basic: domain.BasicInfo{Title: "Chalet", Area: "Keserwan", LocationDetail: "Faqra", PriceUSD: "200000", PropertyType: "Chalet"},
		Specs: domain.Specs{SizeSqm: "90", Description: "Ski in"},
	}}
}

func TestPublishWithoutImagesAsksFirst(t *testing.T) {
	backend := &fakeBackend{}
	prompter := &fakePrompter{answer: true}
	uc := NewPublishPropertyUseCase(loggedIn(), backend, prompter)

	created, err := uc.Execute(context.Background(), readyStep3())
	require.NoError(t, err)
	assert.Equal(t, []string{domain.MsgPublishNoImages}, prompter.asked)
	require.Len(t, backend.created, 1)
	assert.NotNil(t, backend.created[0].Images)
	assert.Empty(t, backend.created[0].Images)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, "token", backend.sessions[0].Token)
}

func TestPublishDeclinedSendsNothing(t *testing.T) {
	backend := &fakeBackend{}
	uc := NewPublishPropertyUseCase(loggedIn(), backend, &fakePrompter{answer: false})

	_, err := uc.Execute(context.Background(), readyStep3())
	assert.ErrorIs(t, err, domain.ErrConfirmationDeclined)
	assert.Empty(t, backend.created)
}

func TestPublishWithImagesSkipsConfirmation(t *testing.T) {
	backend := &fakeBackend{}
	prompter := &fakePrompter{}
	state, err := readyStep3().AddImage("data:image/jpeg;base64,AAAA")
	require.NoError(t, err)

	_, err = NewPublishPropertyUseCase(loggedIn(), backend, prompter).Execute(context.Background(), state)
	require.NoError(t, err)
	assert.Empty(t, prompter.asked)
	assert.Equal(t, []string{"data:image/jpeg;base64,AAAA"}, backend.created[0].Images)
}

func TestPublishFailureSurfacesDetail(t *testing.T) {
	backend := &fakeBackend{failWith: &domain.APIError{StatusCode: 422, Detail: "price_usd must be positive"}}
	state, _ := readyStep3().AddImage("img")

	_, err := NewPublishPropertyUseCase(loggedIn(), backend, &fakePrompter{}).Execute(context.Background(), state)
	assert.Equal(t, "price_usd must be positive", domain.UserMessage(err, domain.MsgPublishFailed))

	backend.failWith = &domain.APIError{StatusCode: 502}
	_, err = NewPublishPropertyUseCase(loggedIn(), backend, &fakePrompter{}).Execute(context.Background(), state)
	assert.Equal(t, domain.MsgPublishFailed, domain.UserMessage(err, domain.MsgPublishFailed))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	backend := catalogFixture()

	err := NewDeletePropertyUseCase(loggedIn(), backend, &fakePrompter{answer: false}).Execute(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrConfirmationDeclined)
	assert.Empty(t, backend.deleted)

	prompter := &fakePrompter{answer: true}
	require.NoError(t, NewDeletePropertyUseCase(loggedIn(), backend, prompter).Execute(context.Background(), "1"))
	assert.Equal(t, []string{"1"}, backend.deleted)
	assert.Equal(t, []string{domain.MsgConfirmDelete}, prompter.asked)
}

func TestEditRoundTrip(t *testing.T) {
	backend := catalogFixture()
	backend.properties[0].PriceUSD = 450000
	backend.properties[0].SizeSqm = 180
	backend.properties[0].LocationDetail = "Hamra"
	backend.properties[0].Description = "Nice"
	backend.properties[0].Status = domain.StatusActive
	store := loggedIn()

	form, p, err := NewLoadPropertyForEditUseCase(store, backend).Execute(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "450000", form.PriceUSD)

	form.PriceUSD = "475000"
	_, err = NewUpdatePropertyUseCase(store, backend).Execute(context.Background(), "1", form)
	require.NoError(t, err)
	require.Len(t, backend.updates, 1)
	assert.Equal(t, 475000.0, *backend.updates[0].PriceUSD)

	form.SizeSqm = "0"
	_, err = NewUpdatePropertyUseCase(store, backend).Execute(context.Background(), "1", form)
	assert.EqualError(t, err, domain.MsgInvalidSize)
	assert.Len(t, backend.updates, 1)
}

func TestAdminListProperties(t *testing.T) {
	backend := catalogFixture()
	props, err := NewAdminListPropertiesUseCase(loggedIn(), backend).Execute(context.Background(), domain.StatusDraft)
	require.NoError(t, err)
	assert.Len(t, props, 2)
	assert.Equal(t, domain.StatusDraft, backend.lastQuery.Status)

	_, err = NewAdminListPropertiesUseCase(&fakeStore{}, backend).Execute(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestUpdateLeadStatusRefreshes(t *testing.T) {
	backend := &fakeBackend{leads: []domain.Lead{
		{ID: "l1", Status: domain.LeadPending},
		{ID: "l2", Status: domain.LeadPending},
	}}
	store := loggedIn()

	pending, err := NewListLeadsUseCase(store, backend).Execute(context.Background(), domain.LeadPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	refreshed, err := NewUpdateLeadStatusUseCase(store, backend).Execute(context.Background(), "l1", domain.LeadContacted, domain.LeadPending)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, "l2", refreshed[0].ID)

	// Обратный переход разрешен.
	_, err = NewUpdateLeadStatusUseCase(store, backend).Execute(context.Background(), "l1", domain.LeadPending, "")
	require.NoError(t, err)
	assert.Equal(t, domain.LeadPending, backend.leads[0].Status)

	_, err = NewUpdateLeadStatusUseCase(store, backend).Execute(context.Background(), "l1", "archived", "")
	assert.EqualError(t, err, domain.MsgInvalidStatus)
}
