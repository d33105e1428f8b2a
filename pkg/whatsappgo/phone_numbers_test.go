package whatsappgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatbridge/whatsapp/pkg/whatsappgo/routing/query"
)

func TestGetPhoneNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v19.0/222/phone_numbers", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"111","verified_name":"Acme","display_phone_number":"+1 555-123-4567","quality_rating":"GREEN"}]}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.GetPhoneNumbers(context.Background(), query.GetPhoneNumbersVariables{Limit: 5})
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	require.Len(t, envelope.Success.Data, 1)
	assert.Equal(t, "Acme", envelope.Success.Data[0].VerifiedName)
}

func TestGetPhoneNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v19.0/111", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"111","verified_name":"Acme","code_verification_status":"VERIFIED"}`))
	}))
	defer server.Close()

	cli := newTestClient(server.URL)
	envelope, err := cli.GetPhoneNumber(context.Background(), "111")
	require.NoError(t, err)

	require.True(t, envelope.Ok())
	assert.Equal(t, "VERIFIED", envelope.Success.CodeVerificationStatus)
}
