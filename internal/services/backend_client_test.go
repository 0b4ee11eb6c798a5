package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderworld/internal/config"
	"wanderworld/internal/models/catalog_models"
	"wanderworld/internal/services"
	"wanderworld/pkg/utils"
)

func TestHTTPBackendClient_ListDestinations_PreservesOrder(t *testing.T) {
	fb := newFakeBackend(t)
	fb.set(func(fb *fakeBackend) {
		fb.destinations = []catalog_models.Destination{
			{ID: "3", Slug: "paris", Name: "Paris", Highlights: []string{"Louvre"}},
			{ID: "1", Slug: "dubai", Name: "Dubai"},
		}
	})

	got, err := fb.client().ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "paris", got[0].Slug)
	assert.Equal(t, []string{"Louvre"}, got[0].Highlights)
	assert.Equal(t, "dubai", got[1].Slug)
}

func TestHTTPBackendClient_ListPackages_QueryOnlyWhenFiltered(t *testing.T) {
	fb := newFakeBackend(t)
	fb.set(dubaiCatalog)
	client := fb.client()

	all, err := client.ListPackages(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dubai, err := client.ListPackages(context.Background(), "dubai")
	require.NoError(t, err)
	require.Len(t, dubai, 1)
	assert.Equal(t, "Desert Safari", dubai[0].Title)
	assert.Equal(t, 199.0, dubai[0].Price)
	assert.Equal(t, 3, dubai[0].Days)

	_, queries, _ := fb.snapshot()
	assert.Equal(t, []string{"*", "dubai"}, queries)
}

func TestHTTPBackendClient_ListPackages_EncodesSlug(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := &services.HTTPBackendClient{HTTP: srv.Client(), BaseURL: srv.URL}
	_, err := client.ListPackages(context.Background(), "sri lanka&co")
	require.NoError(t, err)
	assert.Equal(t, "destination=sri+lanka%26co", rawQuery)
}

func TestHTTPBackendClient_SubmitInquiry_SendsContractKeys(t *testing.T) {
	fb := newFakeBackend(t)

	err := fb.client().SubmitInquiry(context.Background(), catalog_models.InquiryDraft{
		Name:            "Ana",
		Email:           "a@x.com",
		Phone:           "+971",
		Message:         "March",
		PackageTitle:    "Desert Safari",
		DestinationSlug: "dubai",
	})
	require.NoError(t, err)

	_, _, inquiries := fb.snapshot()
	require.Len(t, inquiries, 1)
	assert.Equal(t, map[string]interface{}{
		"name":             "Ana",
		"email":            "a@x.com",
		"phone":            "+971",
		"message":          "March",
		"package_title":    "Desert Safari",
		"destination_slug": "dubai",
	}, inquiries[0])
}

func TestHTTPBackendClient_NonSuccessStatus(t *testing.T) {
	fb := newFakeBackend(t)
	fb.set(func(fb *fakeBackend) {
		fb.listStatus = http.StatusServiceUnavailable
		fb.inquiryStatus = http.StatusUnprocessableEntity
		fb.seedStatus = http.StatusInternalServerError
	})
	client := fb.client()

	_, err := client.ListDestinations(context.Background())
	assert.ErrorIs(t, err, utils.ErrBackendStatus)

	_, err = client.ListPackages(context.Background(), "dubai")
	assert.ErrorIs(t, err, utils.ErrBackendStatus)

	err = client.SubmitInquiry(context.Background(), catalog_models.InquiryDraft{Name: "Ana", Email: "a@x.com"})
	assert.ErrorIs(t, err, utils.ErrBackendStatus)

	assert.ErrorIs(t, client.Seed(context.Background()), utils.ErrBackendStatus)
}

func TestHTTPBackendClient_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	client := &services.HTTPBackendClient{HTTP: srv.Client(), BaseURL: srv.URL}
	_, err := client.ListDestinations(context.Background())
	assert.ErrorIs(t, err, utils.ErrBackendDecode)
}

func TestHTTPBackendClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := services.NewHTTPBackendClient(config.Config{BackendURL: url, BackendTimeout: time.Second})
	_, err := client.ListDestinations(context.Background())
	assert.ErrorIs(t, err, utils.ErrBackendUnavailable)
}
