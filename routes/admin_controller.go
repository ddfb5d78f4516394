package routes

import (
	"encoding/csv"
	"net/http"

	"github.com/vip25/site/app"
	"github.com/vip25/site/log"
	"github.com/vip25/site/model"
)

// Column order is fixed; exported files must stay compatible with the
// spreadsheets consuming them.
var (
	clientCSVHeader = []string{"Date", "Name", "Email", "Phone", "Service", "Message"}
	careerCSVHeader = []string{
		"Date", "Full Name", "Email", "Phone", "Experience", "Skills",
		"Portfolio", "LinkedIn", "GitHub", "Project1", "Project2", "Project3",
		"Message", "Availability",
	}
)

type dashboardView struct {
	ClientForms []model.ClientInquiry
	CareerForms []model.CareerApplication
}

// Dashboard renders both record lists, newest first. A failing store
// degrades to empty lists; the error is logged for the operator, never
// shown to the admin.
func Dashboard(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := dashboardView{}

		clientForms, err := app.ListInquiries(r.Context())
		if err != nil {
			log.Errorf("admin.list_inquiries: %s", err)
		} else {
			view.ClientForms = clientForms
		}

		careerForms, err := app.ListApplications(r.Context())
		if err != nil {
			log.Errorf("admin.list_applications: %s", err)
		} else {
			view.CareerForms = careerForms
		}

		renderHTML(w, "admin.html", view)
	}
}

// ExportClients streams the inquiry collection as a CSV download.
// With no reachable store the file still downloads, header row only.
func ExportClients(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := app.ListInquiries(r.Context())
		if err != nil {
			log.Errorf("admin.export_clients: %s", err)
			forms = nil
		}

		writer := beginCSV(w, "client_forms.csv")
		writer.Write(clientCSVHeader)
		for _, f := range forms {
			writer.Write([]string{
				f.FormattedDate(), f.Name, f.Email, f.Phone, f.Service, f.Message,
			})
		}
		finishCSV(writer, "admin.export_clients")
	}
}

// ExportCareers streams the application collection as a CSV download.
func ExportCareers(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms, err := app.ListApplications(r.Context())
		if err != nil {
			log.Errorf("admin.export_careers: %s", err)
			forms = nil
		}

		writer := beginCSV(w, "career_forms.csv")
		writer.Write(careerCSVHeader)
		for _, f := range forms {
			writer.Write([]string{
				f.FormattedDate(), f.Fullname, f.Email, f.Phone,
				f.Experience, f.Skills, f.Portfolio,
				f.LinkedIn, f.GitHub,
				f.Project1, f.Project2, f.Project3,
				f.Message, f.Availability,
			})
		}
		finishCSV(writer, "admin.export_careers")
	}
}

func beginCSV(w http.ResponseWriter, filename string) *csv.Writer {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	return writer
}

func finishCSV(writer *csv.Writer, code string) {
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("%s: %s", code, err)
	}
}
