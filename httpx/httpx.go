package httpx

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/vip25/site/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// JSONMessage sends a {"message": ...} payload with the given status.
func JSONMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]any{"message": msg})
}

// JSONError logs the error and sends a {"error": ...} payload with the
// given status. The raw error text is the client-facing message.
func JSONError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	log.Debugf("%s: %s", code, err)
	render.Status(r, status)
	render.JSON(w, r, map[string]any{"error": err.Error()})
}
