package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devconnect-io/devconnect-api/adapters/github"
	"github.com/devconnect-io/devconnect-api/pkg/apperror"
)

type GithubHandler struct {
	client *github.Client
}

func NewGithubHandler(client *github.Client) *GithubHandler {
	return &GithubHandler{client: client}
}

// Repos handles GET /api/profile/github/:username, relaying the upstream
// JSON untouched. A transport failure gets an explicit server error rather
// than a hung request.
func (h *GithubHandler) Repos(c *gin.Context) {
	username := c.Param("username")

	body, err := h.client.Repos(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, github.ErrNoRepos) {
			c.Error(apperror.NewNoRepos(username))
			return
		}
		c.Error(apperror.NewInternal("github lookup failed", err))
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
