package http

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var loginMessages = map[string]string{
	"Email":    "Please enter a valid email",
	"Password": "Password is required",
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

var registerMessages = map[string]string{
	"Name":     "Name is required",
	"Email":    "Please enter a valid email",
	"Password": "Please enter a password with 6 or more characters",
}

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

var upsertProfileMessages = map[string]string{
	"Status": "Status is required",
	"Skills": "Skills is required",
}

type experienceRequest struct {
	Title       string     `json:"title" binding:"required"`
	Company     string     `json:"company" binding:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" binding:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

var experienceMessages = map[string]string{
	"Title":   "Title is required",
	"Company": "Company is required",
	"From":    "From date is required",
}

type educationRequest struct {
	School       string     `json:"school" binding:"required"`
	Degree       string     `json:"degree" binding:"required"`
	FieldOfStudy string     `json:"fieldofstudy" binding:"required"`
	From         time.Time  `json:"from" binding:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

var educationMessages = map[string]string{
	"School":       "School is required",
	"Degree":       "Degree is required",
	"FieldOfStudy": "Field of study is required",
	"From":         "From date is required",
}

// validationError converts a gin binding failure into the itemized client
// error shape, one message per failed field.
func validationError(err error, messages map[string]string) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			if m, ok := messages[fe.Field()]; ok {
				msgs = append(msgs, m)
			} else {
				msgs = append(msgs, fe.Field()+" is invalid")
			}
		}
		return apperror.NewValidation(msgs...)
	}
	return apperror.NewValidation("Invalid request body")
}

// splitSkills turns the comma-delimited skills string into trimmed tags,
// preserving order and duplicates exactly as typed.
func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, len(parts))
	for i, p := range parts {
		skills[i] = strings.TrimSpace(p)
	}
	return skills
}

// optional implements the presence rule for partial updates: an empty value
// counts as absent and leaves the stored field untouched.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (req *upsertProfileRequest) toUpdate() profile.Update {
	u := profile.Update{
		Company:        optional(req.Company),
		Website:        optional(req.Website),
		Location:       optional(req.Location),
		Bio:            optional(req.Bio),
		Status:         optional(req.Status),
		GithubUsername: optional(req.GithubUsername),
		Social: profile.Social{
			Youtube:   req.Youtube,
			Facebook:  req.Facebook,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			Linkedin:  req.Linkedin,
		},
	}
	if req.Skills != "" {
		u.Skills = splitSkills(req.Skills)
	}
	return u
}

func (req *experienceRequest) toDomain() profile.Experience {
	return profile.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
}

func (req *educationRequest) toDomain() profile.Education {
	return profile.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
}
