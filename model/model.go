package model

import (
	"time"

	"github.com/vip25/site/sanitize"
)

const dateFormat = "2006-01-02 15:04"

// ClientInquiry is a general contact / service inquiry form submission.
// Records are immutable once written.
type ClientInquiry struct {
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone" json:"phone"`
	Service     string    `bson:"service" json:"service"`
	Message     string    `bson:"message" json:"message"`
	SubmittedAt time.Time `bson:"submitted_at,omitempty" json:"submitted_at"`
}

func (c *ClientInquiry) Sanitize() {
	c.Name = sanitize.Clean(c.Name)
	c.Email = sanitize.Clean(c.Email)
	c.Phone = sanitize.Clean(c.Phone)
	c.Service = sanitize.Clean(c.Service)
	c.Message = sanitize.Clean(c.Message)
}

func (c ClientInquiry) FormattedDate() string {
	return formatDate(c.SubmittedAt)
}

// CareerApplication is a job application form submission.
type CareerApplication struct {
	Fullname     string    `bson:"fullname" json:"fullname"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Experience   string    `bson:"experience" json:"experience"`
	Skills       string    `bson:"skills" json:"skills"`
	Portfolio    string    `bson:"portfolio" json:"portfolio"`
	LinkedIn     string    `bson:"linkedin" json:"linkedin"`
	GitHub       string    `bson:"github" json:"github"`
	Project1     string    `bson:"project1" json:"project1"`
	Project2     string    `bson:"project2" json:"project2"`
	Project3     string    `bson:"project3" json:"project3"`
	Message      string    `bson:"message" json:"message"`
	Availability string    `bson:"availability" json:"availability"`
	SubmittedAt  time.Time `bson:"submitted_at,omitempty" json:"submitted_at"`
}

func (a *CareerApplication) Sanitize() {
	a.Fullname = sanitize.Clean(a.Fullname)
	a.Email = sanitize.Clean(a.Email)
	a.Phone = sanitize.Clean(a.Phone)
	a.Experience = sanitize.Clean(a.Experience)
	a.Skills = sanitize.Clean(a.Skills)
	a.Portfolio = sanitize.Clean(a.Portfolio)
	a.LinkedIn = sanitize.Clean(a.LinkedIn)
	a.GitHub = sanitize.Clean(a.GitHub)
	a.Project1 = sanitize.Clean(a.Project1)
	a.Project2 = sanitize.Clean(a.Project2)
	a.Project3 = sanitize.Clean(a.Project3)
	a.Message = sanitize.Clean(a.Message)
	a.Availability = sanitize.Clean(a.Availability)
}

func (a CareerApplication) FormattedDate() string {
	return formatDate(a.SubmittedAt)
}

// formatDate renders the submission time, or "N/A" when the record
// carries no timestamp.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(dateFormat)
}
