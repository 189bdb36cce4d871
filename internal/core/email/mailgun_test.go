package email

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/quote-service/internal/core/domain"
)

func TestMailgunSender_Send(t *testing.T) {
	var (
		calls  int
		path   string
		user   string
		pass   string
		fields = map[string]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		path = r.URL.Path
		user, pass, _ = r.BasicAuth()
		for _, key := range []string{"from", "to", "subject", "text", "h:Reply-To"} {
			fields[key] = r.FormValue(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"<20261017.1@mg.sunday.studio>","message":"Queued. Thank you."}`))
	}))
	defer srv.Close()

	sender := NewMailgunSender("mg.sunday.studio", "mg-key", srv.URL+"/v3", srv.Client())
	require.NoError(t, sender.Send(context.Background(), testMessage()))

	assert.Equal(t, 1, calls)
	assert.Equal(t, "/v3/mg.sunday.studio/messages", path)
	assert.Equal(t, "api", user)
	assert.Equal(t, "mg-key", pass)
	assert.Equal(t, map[string]string{
		"from":       "quotes@sunday.studio",
		"to":         "bookings@sunday.studio",
		"subject":    "New Sunday Studio quote request: Ayesha Khan",
		"text":       "Name: Ayesha Khan",
		"h:Reply-To": "a@x.com",
	}, fields)
}

func TestMailgunSender_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"from parameter is not a valid address"}`))
	}))
	defer srv.Close()

	err := NewMailgunSender("mg.sunday.studio", "mg-key", srv.URL+"/v3", srv.Client()).
		Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)

	var perr *domain.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "mailgun", perr.Provider)
	assert.Equal(t, http.StatusBadRequest, perr.StatusCode)
	assert.Contains(t, perr.Body, "not a valid address")
}
