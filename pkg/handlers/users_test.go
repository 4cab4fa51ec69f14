package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"redditserver/pkg/session"
	"redditserver/pkg/user"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	userID   = "8a6b2705-9f9c-4f36-9e5f-0f2e5a3a7a11"
	username = "vectoreal"
	password = "secret_password"
	token    = "test_token"
)

func passwordHash(t *testing.T) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err.Error())
	}

	return hash
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("unexpected error marshalling body: %v", err.Error())
	}

	return bytes.NewBuffer(raw)
}

func authedRequest(method, target string, body io.Reader, sess *session.Session) *http.Request {
	r := httptest.NewRequest(method, target, body)
	if sess != nil {
		r = r.WithContext(context.WithValue(r.Context(), session.SessionKey, sess))
	}

	return r
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("every response carries status 200, got %d", w.Result().StatusCode)
	}

	envelope := map[string]interface{}{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid json in response: %s", w.Body.String())
	}

	return envelope
}

func expectFailure(t *testing.T, w *httptest.ResponseRecorder, msg string) {
	envelope := parseEnvelope(t, w)
	if envelope["success"] != false {
		t.Fatalf("expected success false, got %v", envelope)
	}
	if envelope["error"] != msg {
		t.Fatalf("expected error %q, got %v", msg, envelope["error"])
	}
}

func newUserHandler(t *testing.T) (*UserHandler, *MockUsersRepo, *session.MockSessionManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockUsersRepo(ctrl)
	sm := session.NewMockSessionManager(ctrl)

	return &UserHandler{Sm: sm, Repo: repo, Logger: zap.NewNop().Sugar()}, repo, sm
}

func TestRegisterHappyCase(t *testing.T) {
	h, repo, sm := newUserHandler(t)

	repo.EXPECT().GetByUsername(username).Return(nil, nil)
	repo.EXPECT().Add(gomock.Any()).Return(userID, nil)
	sm.EXPECT().
		Create(&session.User{ID: userID, Username: username}, gomock.Any()).
		Return(token, nil)

	w := httptest.NewRecorder()
	h.Register(w, authedRequest(http.MethodPost, "/users/register",
		jsonBody(t, map[string]string{"username": username, "password": password}), nil))

	envelope := parseEnvelope(t, w)
	if envelope["success"] != true || envelope["token"] != token {
		t.Fatalf("unexpected response: %v", envelope)
	}
}

func TestRegisterUsernameExists(t *testing.T) {
	h, repo, _ := newUserHandler(t)

	repo.EXPECT().
		GetByUsername(username).
		Return(&user.User{ID: userID, Username: username, Password: passwordHash(t)}, nil)

	w := httptest.NewRecorder()
	h.Register(w, authedRequest(http.MethodPost, "/users/register",
		jsonBody(t, map[string]string{"username": username, "password": password}), nil))

	expectFailure(t, w, "Username already exists, please login.")
}

func TestRegisterLostRace(t *testing.T) {
	h, repo, _ := newUserHandler(t)

	repo.EXPECT().GetByUsername(username).Return(nil, nil)
	repo.EXPECT().Add(gomock.Any()).Return("", user.ErrUsernameTaken)

	w := httptest.NewRecorder()
	h.Register(w, authedRequest(http.MethodPost, "/users/register",
		jsonBody(t, map[string]string{"username": username, "password": password}), nil))

	expectFailure(t, w, "Username already exists, please login.")
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name     string
		body     map[string]string
		expected string
	}{
		{
			name:     "short username",
			body:     map[string]string{"username": "ab", "password": password},
			expected: "username must be at least 3 characters long",
		},
		{
			name:     "long username",
			body:     map[string]string{"username": "very_long_username_over_limit", "password": password},
			expected: "username must be at most 20 characters long",
		},
		{
			name:     "missing username",
			body:     map[string]string{"password": password},
			expected: "username is required",
		},
		{
			name:     "missing password",
			body:     map[string]string{"username": username},
			expected: "password is required",
		},
		{
			name:     "blank password",
			body:     map[string]string{"username": username, "password": ""},
			expected: "password cannot be blank",
		},
	}

	for _, tc := range cases {
		h, _, _ := newUserHandler(t)

		w := httptest.NewRecorder()
		h.Register(w, authedRequest(http.MethodPost, "/users/register", jsonBody(t, tc.body), nil))

		expectFailure(t, w, tc.expected)
	}
}

func TestLoginHappyCase(t *testing.T) {
	h, repo, sm := newUserHandler(t)

	repo.EXPECT().
		GetByUsername(username).
		Return(&user.User{ID: userID, Username: username, Password: passwordHash(t)}, nil)
	sm.EXPECT().
		Create(&session.User{ID: userID, Username: username}, gomock.Any()).
		Return(token, nil)

	w := httptest.NewRecorder()
	h.Login(w, authedRequest(http.MethodPost, "/users/login",
		jsonBody(t, map[string]string{"username": username, "password": password}), nil))

	envelope := parseEnvelope(t, w)
	if envelope["success"] != true || envelope["token"] != token {
		t.Fatalf("unexpected response: %v", envelope)
	}
}

// unknown usernames and wrong passwords produce byte-identical errors
func TestLoginEnumerationResistance(t *testing.T) {
	h, repo, _ := newUserHandler(t)
	repo.EXPECT().GetByUsername("missing_user").Return(nil, nil)

	w := httptest.NewRecorder()
	h.Login(w, authedRequest(http.MethodPost, "/users/login",
		jsonBody(t, map[string]string{"username": "missing_user", "password": password}), nil))
	unknownUser := w.Body.String()
	expectFailure(t, w, loginError)

	h, repo, _ = newUserHandler(t)
	repo.EXPECT().
		GetByUsername(username).
		Return(&user.User{ID: userID, Username: username, Password: passwordHash(t)}, nil)

	w = httptest.NewRecorder()
	h.Login(w, authedRequest(http.MethodPost, "/users/login",
		jsonBody(t, map[string]string{"username": username, "password": "wrong_password"}), nil))
	expectFailure(t, w, loginError)

	if w.Body.String() != unknownUser {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", unknownUser, w.Body.String())
	}
}

func TestCurrentUser(t *testing.T) {
	h, repo, _ := newUserHandler(t)

	repo.EXPECT().
		GetByID(userID).
		Return(&user.User{ID: userID, Username: username, Password: passwordHash(t)}, nil)

	sess := &session.Session{User: &session.User{ID: userID, Username: username}}
	w := httptest.NewRecorder()
	h.CurrentUser(w, authedRequest(http.MethodGet, "/users/token", nil, sess))

	envelope := parseEnvelope(t, w)
	if envelope["success"] != true {
		t.Fatalf("unexpected response: %v", envelope)
	}

	userJSON, ok := envelope["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object: %v", envelope)
	}
	if userJSON["id"] != userID || userJSON["username"] != username {
		t.Fatalf("unexpected user: %v", userJSON)
	}
	if _, leaked := userJSON["password"]; leaked {
		t.Fatalf("password field must never be serialized: %v", userJSON)
	}
}

func TestCurrentUserAnonymous(t *testing.T) {
	h, _, _ := newUserHandler(t)

	w := httptest.NewRecorder()
	h.CurrentUser(w, authedRequest(http.MethodGet, "/users/token", nil, nil))

	expectFailure(t, w, "You must be logged in.")
}
