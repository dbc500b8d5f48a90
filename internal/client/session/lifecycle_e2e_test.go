package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fdatrack/fdatrack/internal/client/api"
	"github.com/fdatrack/fdatrack/internal/client/captcha"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Full lifecycle against a real HTTP backend: login persists the complete
// session, logout tears every part of it down, and subscribers see each
// transition.
func TestLifecycle_LoginThenLogout_EndToEnd(t *testing.T) {
	ctx := context.Background()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1", "email": "jane@example.com", "firstName": "Jane", "lastName": "Doe",
	})
	issued, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	var logoutHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "proof", body["g-recaptcha-response"])
			if body["email"] != "jane@example.com" || body["password"] != "hunter2" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": issued})
		case "/api/logout":
			logoutHits.Add(1)
			require.Equal(t, "Bearer "+issued, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store, _ := setupStore(t)
	client, err := api.New(srv.URL, store, 5*time.Second, testLogger())
	require.NoError(t, err)

	svc := NewService(store, client, captcha.NewStaticProvider("proof"), time.Second, testLogger())

	var transitions []bool
	svc.Subscribe(func(authenticated bool) { transitions = append(transitions, authenticated) })

	// wrong credentials first: server message surfaces, nothing persisted
	err = svc.Login(ctx, "jane@example.com", "nope")
	var authErr *api.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "Invalid email or password", authErr.Message)
	_, ok, err := store.ReadToken(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, svc.Login(ctx, "jane@example.com", "hunter2"))
	require.True(t, svc.IsAuthenticated())

	got, ok, err := store.ReadToken(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, issued, got)

	profile, has, err := store.ReadProfile(ctx)
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, "Jane Doe", profile.DisplayName())

	active, err := store.Active(ctx)
	require.NoError(t, err)
	require.True(t, active)

	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, int32(1), logoutHits.Load())
	require.False(t, svc.IsAuthenticated())

	_, ok, err = store.ReadToken(ctx)
	require.NoError(t, err)
	require.False(t, ok)
	_, has, err = store.ReadProfile(ctx)
	require.NoError(t, err)
	require.False(t, has)
	active, err = store.Active(ctx)
	require.NoError(t, err)
	require.False(t, active)

	require.True(t, strings.HasSuffix(joinBools(transitions), "true,false"),
		"last transitions should be login then logout, got %v", transitions)
}

// A backend 401 on an authenticated call, wired through the auth-failure
// listener, must end the session the same way an explicit logout does.
func TestLifecycle_BackendRejectionForcesLogout(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/logout":
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	store, _ := setupStore(t)
	client, err := api.New(srv.URL, store, 5*time.Second, testLogger())
	require.NoError(t, err)

	svc := NewService(store, client, captcha.NewStaticProvider("proof"), time.Second, testLogger())
	client.SetAuthFailureListener(func() { _ = svc.Logout(context.Background()) })

	// a stale but well-formed token the backend has since revoked
	issued := issueToken(t, jwt.MapClaims{"sub": "u1", "email": "jane@example.com"})
	require.NoError(t, store.WriteToken(ctx, issued))
	require.NoError(t, svc.Restore(ctx))
	require.True(t, svc.IsAuthenticated())

	_, err = client.Do(ctx, http.MethodGet, "/api/companies", nil, nil)
	require.ErrorIs(t, err, api.ErrUnauthorized)

	require.False(t, svc.IsAuthenticated())
	_, ok, err := store.ReadToken(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func joinBools(bs []bool) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		if b {
			parts[i] = "true"
		} else {
			parts[i] = "false"
		}
	}
	return strings.Join(parts, ",")
}
