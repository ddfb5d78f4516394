package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vip25/site/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Run("remote addr fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "203.0.113.7:51234"
		assert.Equal(t, "203.0.113.7", clientip.FromRequest(r))
	})

	t.Run("x-forwarded-for first valid entry", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1")
		assert.Equal(t, "198.51.100.9", clientip.FromRequest(r))
	})

	t.Run("x-forwarded-for skips garbage", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Forwarded-For", "not-an-ip, 198.51.100.9")
		assert.Equal(t, "198.51.100.9", clientip.FromRequest(r))
	})

	t.Run("x-real-ip", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("X-Real-IP", "192.0.2.44")
		assert.Equal(t, "192.0.2.44", clientip.FromRequest(r))
	})

	t.Run("ipv6 normalized", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "[2001:db8::1]:443"
		assert.Equal(t, "2001:db8::1", clientip.FromRequest(r))
	})
}
