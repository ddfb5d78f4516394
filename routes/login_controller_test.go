package routes_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginPage(t *testing.T) {
	handler, _ := wire(t, &fakeStore{})

	w := serve(handler, httptestGet("/login"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Login")
	assert.NotContains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginSuccess(t *testing.T) {
	setAdminCredentials(t, "admin", "correct-horse")
	handler, _ := wire(t, &fakeStore{})

	w := serve(handler, formRequest("/login", map[string]string{
		"username": "admin",
		"password": "correct-horse",
	}))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// The issued cookie opens the dashboard.
	r := httptestGet("/admin")
	r.AddCookie(cookies[0])
	assert.Equal(t, http.StatusOK, serve(handler, r).Code)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	setAdminCredentials(t, "admin", "correct-horse")
	handler, _ := wire(t, &fakeStore{})

	wrongPassword := serve(handler, formRequest("/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}))
	wrongUsername := serve(handler, formRequest("/login", map[string]string{
		"username": "intruder",
		"password": "correct-horse",
	}))

	assert.Equal(t, http.StatusOK, wrongPassword.Code)
	assert.Equal(t, http.StatusOK, wrongUsername.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")

	// Wrong username and wrong password are indistinguishable.
	assert.Equal(t, wrongPassword.Body.String(), wrongUsername.Body.String())

	assert.Empty(t, wrongPassword.Result().Cookies(), "no session on failed login")
}

func TestLogout(t *testing.T) {
	setAdminCredentials(t, "admin", "correct-horse")
	handler, a := wire(t, &fakeStore{})

	r := httptestGet("/logout")
	r.AddCookie(adminCookie(t, a))
	w := serve(handler, r)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)

	// Logging out twice is not an error.
	w = serve(handler, httptestGet("/logout"))
	assert.Equal(t, http.StatusFound, w.Code)
}
