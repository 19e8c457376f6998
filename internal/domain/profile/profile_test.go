package profile

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestApply_CreatesFromPartialFields(t *testing.T) {
	p := &Profile{}

	p.Apply(Update{
		Status: strptr("Developer"),
		Skills: []string{"js", "css"},
	})

	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"js", "css"}, p.Skills)
	assert.Empty(t, p.Company)
	assert.Empty(t, p.Bio)
}

func TestApply_AbsentFieldsLeftUntouched(t *testing.T) {
	p := &Profile{
		Status: "Developer",
		Skills: []string{"js", "css"},
	}

	p.Apply(Update{Bio: strptr("hi")})

	assert.Equal(t, "hi", p.Bio)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"js", "css"}, p.Skills)
}

func TestApply_SocialRebuiltWhole(t *testing.T) {
	p := &Profile{
		Social: Social{Youtube: "yt", Twitter: "tw"},
	}

	p.Apply(Update{
		Social: Social{Linkedin: "li"},
	})

	assert.Equal(t, Social{Linkedin: "li"}, p.Social)
}

func TestApply_SkillsPreservedAsTyped(t *testing.T) {
	p := &Profile{}

	p.Apply(Update{Skills: []string{"go", "go", "sql"}})

	assert.Equal(t, []string{"go", "go", "sql"}, p.Skills)
}

func TestAddExperience_MostRecentFirst(t *testing.T) {
	p := &Profile{}
	e1 := Experience{ID: uuid.New(), Title: "Junior", Company: "Acme", From: time.Now()}
	e2 := Experience{ID: uuid.New(), Title: "Senior", Company: "Acme", From: time.Now()}

	p.AddExperience(e1)
	p.AddExperience(e2)

	require.Len(t, p.Experience, 2)
	assert.Equal(t, e2.ID, p.Experience[0].ID)
	assert.Equal(t, e1.ID, p.Experience[1].ID)
}

func TestRemoveExperience(t *testing.T) {
	e1 := Experience{ID: uuid.New(), Title: "Junior"}
	e2 := Experience{ID: uuid.New(), Title: "Senior"}
	p := &Profile{Experience: []Experience{e2, e1}}

	assert.False(t, p.RemoveExperience(uuid.New()))
	assert.Len(t, p.Experience, 2)

	assert.True(t, p.RemoveExperience(e1.ID))
	require.Len(t, p.Experience, 1)
	assert.Equal(t, e2.ID, p.Experience[0].ID)
}

func TestAddEducation_MostRecentFirst(t *testing.T) {
	p := &Profile{}
	e1 := Education{ID: uuid.New(), School: "MIT"}
	e2 := Education{ID: uuid.New(), School: "Stanford"}

	p.AddEducation(e1)
	p.AddEducation(e2)

	require.Len(t, p.Education, 2)
	assert.Equal(t, e2.ID, p.Education[0].ID)
}

func TestRemoveEducation_NotFound(t *testing.T) {
	e := Education{ID: uuid.New(), School: "MIT"}
	p := &Profile{Education: []Education{e}}

	assert.False(t, p.RemoveEducation(uuid.New()))
	assert.Len(t, p.Education, 1)

	assert.True(t, p.RemoveEducation(e.ID))
	assert.Empty(t, p.Education)
}
