package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/vip25/site/app"
	"github.com/vip25/site/httpx"
	"github.com/vip25/site/model"
	"github.com/vip25/site/store"
)

func HomePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderHTML(w, "index.html", nil)
	}
}

func CareerPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderHTML(w, "career.html", nil)
	}
}

// SubmitClientForm accepts a contact/service inquiry. Missing fields
// are stored empty; nothing is required. Duplicate submissions produce
// duplicate records on purpose.
func SubmitClientForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiry := model.ClientInquiry{}
		err := render.DecodeJSON(r.Body, &inquiry)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.client.parse_body", err)
			return
		}

		if !app.Available() {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.client.store", store.ErrUnavailable)
			return
		}

		inquiry.Sanitize()
		inquiry.SubmittedAt = time.Now().UTC()

		err = app.InsertInquiry(r.Context(), inquiry)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.client.insert", err)
			return
		}

		httpx.JSONMessage(w, r, http.StatusCreated, "Form submitted successfully")
	}
}

// SubmitCareerForm accepts a job application, same shape as the client
// form over the thirteen career fields.
func SubmitCareerForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		application := model.CareerApplication{}
		err := render.DecodeJSON(r.Body, &application)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.career.parse_body", err)
			return
		}

		if !app.Available() {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.career.store", store.ErrUnavailable)
			return
		}

		application.Sanitize()
		application.SubmittedAt = time.Now().UTC()

		err = app.InsertApplication(r.Context(), application)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "api.career.insert", err)
			return
		}

		httpx.JSONMessage(w, r, http.StatusCreated, "Application submitted successfully")
	}
}
