package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-123","user":{"id":"u1","name":"Ada","email":"ada@example.com","role":"user"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login(context.Background(), "ada@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.Equal(t, "Ada", resp.User.Name)
	assert.Equal(t, "user", resp.User.Role)
}

func TestBearerTokenHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"u1","name":"Ada","email":"ada@example.com","role":"user"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	user, err := client.GetProfile(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestErrorCarriesBackendMessage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		defaultMsg  string
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "structured message takes precedence over default",
			status:      http.StatusBadRequest,
			body:        `{"message":"Token expired"}`,
			defaultMsg:  "failed to reset password",
			wantMessage: "Token expired",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "bare 401 normalizes to invalid credentials",
			status:      http.StatusUnauthorized,
			body:        ``,
			defaultMsg:  "login failed",
			wantMessage: MsgInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name:        "bare 409 normalizes to duplicate email",
			status:      http.StatusConflict,
			body:        `{}`,
			defaultMsg:  "registration failed",
			wantMessage: MsgDuplicateEmail,
			wantStatus:  http.StatusConflict,
		},
		{
			name:        "unknown status falls back to the per-call default",
			status:      http.StatusInternalServerError,
			body:        `oops`,
			defaultMsg:  "login failed",
			wantMessage: "login failed",
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "error field is used when message is absent",
			status:      http.StatusBadRequest,
			body:        `{"error":"slug already taken"}`,
			defaultMsg:  "failed to publish post",
			wantMessage: "slug already taken",
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(server.URL)
			_, err := client.GetProfile(context.Background(), "tok")
			require.Error(t, err)

			normalized := Normalize(err, tt.defaultMsg)
			assert.Equal(t, tt.wantMessage, normalized.Message)
			assert.Equal(t, tt.wantStatus, normalized.Status)
		})
	}
}

func TestTransportFailureHasStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL)
	_, err := client.GetProfile(context.Background(), "tok")

	require.Error(t, err)
	assert.Equal(t, 0, StatusOf(err))
	assert.Equal(t, "login failed", Normalize(err, "login failed").Message)
}

func TestListPostsPaginatedQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/paginated", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "golang", r.URL.Query().Get("search"))
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
		assert.Empty(t, r.URL.Query().Get("endDate"))

		_, _ = w.Write([]byte(`{"posts":[],"total":0,"page":2,"limit":10,"totalPages":0}`))
	}))
	defer server.Close()

	client := New(server.URL)
	page, err := client.ListPostsPaginated(context.Background(), PostFilter{
		Page:      2,
		Limit:     10,
		Search:    "golang",
		StartDate: "2026-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

func TestCheckVerificationStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check-verification-status", r.URL.Path)
		_, _ = w.Write([]byte(`{"verified":true}`))
	}))
	defer server.Close()

	client := New(server.URL)
	verified, err := client.CheckVerificationStatus(context.Background(), "ada@example.com")

	require.NoError(t, err)
	assert.True(t, verified)
}

func TestUploadImageMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "me.png", header.Filename)

		_, _ = w.Write([]byte(`{"message":"ok","filename":"abc.png","originalName":"me.png","size":4,"url":"/uploads/abc.png"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	upload, err := client.UploadImage(context.Background(), "tok", "me.png", bytes.NewReader([]byte("data")))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", upload.URL)
}
