package routes

import (
	"net/http"

	"github.com/vip25/site/app"
	"github.com/vip25/site/auth"
	"github.com/vip25/site/httpx"
	"github.com/vip25/site/log"
)

type loginView struct {
	Error string
}

func LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderHTML(w, "login.html", loginView{})
	}
}

// Login checks the posted credentials. Any mismatch re-renders the
// form with the same generic message; whether the username or the
// password was wrong is never surfaced.
func Login(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseForm()
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "login.parse_form")
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		if !auth.Verify(username, password) {
			log.Debug("login.rejected")
			renderHTML(w, "login.html", loginView{Error: "Invalid credentials"})
			return
		}

		app.Start(w)
		log.Info("login.accepted")
		http.Redirect(w, r, "/admin", http.StatusFound)
	}
}

// Logout clears the session unconditionally; logging out twice is fine.
func Logout(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app.Clear(w)
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
