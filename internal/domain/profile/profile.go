package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEntryNotFound   = errors.New("entry not found")
)

type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Owner is the joined slice of the owning identity that profile reads carry.
type Owner struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

type Profile struct {
	UserID         uuid.UUID    `json:"-"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Owner          *Owner       `json:"user,omitempty"`
}

// Update is a partial profile write: nil means the field was absent from the
// request and the stored value stays. Social is the exception — it is rebuilt
// whole from whatever social links the request carried.
type Update struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         Social
}

// Apply merges a partial update into the profile, field by field.
func (p *Profile) Apply(u Update) {
	if u.Company != nil {
		p.Company = *u.Company
	}
	if u.Website != nil {
		p.Website = *u.Website
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.GithubUsername != nil {
		p.GithubUsername = *u.GithubUsername
	}
	if u.Skills != nil {
		p.Skills = u.Skills
	}
	p.Social = u.Social
}

// AddExperience prepends, keeping the list most-recent-first.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// RemoveExperience filters the list by entry id and reports whether the id
// was present.
func (p *Profile) RemoveExperience(entryID uuid.UUID) bool {
	kept := make([]Experience, 0, len(p.Experience))
	found := false
	for _, e := range p.Experience {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	p.Experience = kept
	return found
}

func (p *Profile) RemoveEducation(entryID uuid.UUID) bool {
	kept := make([]Education, 0, len(p.Education))
	found := false
	for _, e := range p.Education {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	p.Education = kept
	return found
}

type Repository interface {
	// FindByUserID returns the profile joined with the owner's name and
	// avatar, or ErrProfileNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
	// Upsert creates the profile on first write, otherwise merges the
	// partial update into the stored record.
	Upsert(ctx context.Context, userID uuid.UUID, u Update) (*Profile, error)
	PushExperience(ctx context.Context, userID uuid.UUID, e Experience) (*Profile, error)
	PushEducation(ctx context.Context, userID uuid.UUID, e Education) (*Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID uuid.UUID) (*Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID uuid.UUID) (*Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
