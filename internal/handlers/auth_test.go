package handlers

import (
	"net/http"
	"testing"
)

func TestRegisterEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "password": "password123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp AuthResponse
	decodeBody(t, w, &resp)
	if resp.User.Username != "alice" {
		t.Errorf("username = %q", resp.User.Username)
	}
	if resp.User.Points != 100 {
		t.Errorf("points = %d, want 100", resp.User.Points)
	}

	cookie := sessionFrom(t, w)
	if cookie == "" {
		t.Fatal("empty session cookie")
	}

	// The cookie authenticates immediately.
	me := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookie)
	if me.Code != http.StatusOK {
		t.Errorf("me status = %d: %s", me.Code, me.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "password123"},
		{"password too short", "alice", "short"},
		{"missing username", "", "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register",
				map[string]string{"username": tt.username, "password": tt.password}, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRegisterDuplicateEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "alice", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		map[string]string{"username": "alice", "password": "different456"}, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "alice", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "password123"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if sessionFrom(t, w) == "" {
		t.Error("login issued no session cookie")
	}

	bad := doJSON(t, r, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "wrongwrong"}, "")
	if bad.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d, want 401", bad.Code)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	cookie := registerUser(t, r, "alice", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	me := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, cookie)
	if me.Code != http.StatusUnauthorized {
		t.Errorf("me after logout = %d, want 401", me.Code)
	}

	// Logout never fails, cookie or not.
	again := doJSON(t, r, http.MethodPost, "/api/auth/logout", nil, "")
	if again.Code != http.StatusOK {
		t.Errorf("cookieless logout = %d, want 200", again.Code)
	}
}

func TestMeRequiresSession(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	bogus := doJSON(t, r, http.MethodGet, "/api/auth/me", nil, "not-a-token")
	if bogus.Code != http.StatusUnauthorized {
		t.Errorf("bogus token status = %d, want 401", bogus.Code)
	}
}
