package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerID(t *testing.T) {
	svc := NewService("secret", "", time.Hour)
	token, err := svc.IssueToken("compiler-9")
	require.NoError(t, err)

	foreign, err := NewService("other", "", time.Hour).IssueToken("intruder")
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		wantID string
		wantOK bool
	}{
		{
			name:   "bearer header",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantID: "compiler-9", wantOK: true,
		},
		{
			name:   "lowercase scheme",
			setup:  func(r *http.Request) { r.Header.Set("Authorization", "bearer "+token) },
			wantID: "compiler-9", wantOK: true,
		},
		{
			name:   "cookie",
			setup:  func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "auth_token", Value: token}) },
			wantID: "compiler-9", wantOK: true,
		},
		{
			name:  "nothing",
			setup: func(r *http.Request) {},
		},
		{
			name:  "foreign signature",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreign) },
		},
		{
			name:  "basic auth is not a token",
			setup: func(r *http.Request) { r.SetBasicAuth("u", "p") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)

			id, ok := svc.CallerID(r)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
