package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vip25/site/app"
	"github.com/vip25/site/config"
	"github.com/vip25/site/model"
	"github.com/vip25/site/routes"
	"github.com/vip25/site/session"
	"github.com/vip25/site/store"
)

// fakeStore is an in-memory stand-in for the mongo store, with a
// switch to simulate an unreachable database.
type fakeStore struct {
	mu           sync.Mutex
	inquiries    []model.ClientInquiry
	applications []model.CareerApplication
	down         bool
}

func (s *fakeStore) Available() bool { return !s.down }

func (s *fakeStore) InsertInquiry(_ context.Context, inq model.ClientInquiry) error {
	if s.down {
		return store.ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inquiries = append(s.inquiries, inq)
	return nil
}

func (s *fakeStore) InsertApplication(_ context.Context, app model.CareerApplication) error {
	if s.down {
		return store.ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications = append(s.applications, app)
	return nil
}

func (s *fakeStore) ListInquiries(context.Context) ([]model.ClientInquiry, error) {
	if s.down {
		return nil, store.ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.inquiries)
	slices.SortFunc(out, func(a, b model.ClientInquiry) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return out, nil
}

func (s *fakeStore) ListApplications(context.Context) ([]model.CareerApplication, error) {
	if s.down {
		return nil, store.ErrUnavailable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.applications)
	slices.SortFunc(out, func(a, b model.CareerApplication) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
	return out, nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T, st store.Store) app.App {
	t.Helper()

	sessions, err := session.New(testSecret, false)
	require.NoError(t, err)

	return app.App{
		Store:   st,
		Manager: sessions,
		Config: config.Config{
			SecretKey:   testSecret,
			DailyLimit:  1000,
			HourlyLimit: 1000,
			SubmitLimit: 5,
			ExportLimit: 10,
		},
	}
}

// setAdminCredentials points the admin identity at admin / pass for
// the duration of the test.
func setAdminCredentials(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_USERNAME", username)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
}

// adminCookie returns a valid session cookie issued by the app's own
// session manager.
func adminCookie(t *testing.T, a app.App) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	a.Manager.Start(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func serve(handler http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func jsonRequest(method, target, body, remoteAddr string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if remoteAddr != "" {
		r.RemoteAddr = remoteAddr
	}
	return r
}

func formRequest(target string, form map[string]string) *http.Request {
	values := make([]string, 0, len(form))
	for k, v := range form {
		values = append(values, k+"="+v)
	}
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(strings.Join(values, "&")))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func wire(t *testing.T, st store.Store) (http.Handler, app.App) {
	t.Helper()
	a := newTestApp(t, st)
	return routes.Wire(a), a
}
