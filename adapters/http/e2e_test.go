package http

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/devconnect-io/devconnect-api/adapters/github"
	"github.com/devconnect-io/devconnect-api/adapters/persistence"
	authUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/auth"
	profileUC "github.com/devconnect-io/devconnect-api/internal/application/usecase/profile"
	"github.com/devconnect-io/devconnect-api/internal/config"
	"github.com/devconnect-io/devconnect-api/internal/domain/profile"
	"github.com/devconnect-io/devconnect-api/pkg/auth"
	"github.com/devconnect-io/devconnect-api/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// End-to-end flow against a real Postgres. Run with E2E_TESTS=1 and a
// DB_DSN pointing at a disposable database.
type APIE2ETestSuite struct {
	suite.Suite
	env    *testEnv
	dbPool *pgxpool.Pool
	email  string
}

func TestAPIE2E(t *testing.T) {
	if os.Getenv("E2E_TESTS") == "" {
		t.Skip("Skipping E2E tests. Set E2E_TESTS=1 to run.")
	}
	suite.Run(t, new(APIE2ETestSuite))
}

func (s *APIE2ETestSuite) SetupSuite() {
	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	appLogger := logger.New("development")

	s.dbPool, err = pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	userRepo := persistence.NewPostgresUserRepo(s.dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(s.dbPool, appLogger)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	authHandler := NewAuthHandler(
		authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger),
		authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger),
		authUC.NewCurrentUserUseCase(userRepo),
	)
	profileHandler := NewProfileHandler(
		profileUC.NewProfileUseCase(profileRepo),
		profileUC.NewEntryUseCase(profileRepo),
		profileUC.NewAccountUseCase(userRepo, profileRepo),
	)
	githubHandler := NewGithubHandler(github.NewClient(cfg))

	gin.SetMode(gin.TestMode)
	router := NewRouter(
		authHandler,
		profileHandler,
		githubHandler,
		AuthMiddleware(jwtSvc),
		ErrorMiddleware(appLogger),
	)

	s.env = &testEnv{router: router, jwtSvc: jwtSvc}
	s.email = "e2e_" + time.Now().UTC().Format("20060102150405") + "@example.com"
}

func (s *APIE2ETestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}

func (s *APIE2ETestSuite) Test_FullAccountLifecycle() {
	t := s.T()

	// register
	w := s.env.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name": "E2E User", "email": s.email, "password": "e2e_password_123",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var reg struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &reg))

	// login
	w = s.env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email": s.email, "password": "e2e_password_123",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Token

	// create profile
	w = s.env.do(t, http.MethodPost, "/api/profile", token, gin.H{
		"status": "Developer", "skills": "go, sql",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// add + read back experience
	w = s.env.do(t, http.MethodPut, "/api/profile/experience", token, gin.H{
		"title": "Engineer", "company": "Acme", "from": "2020-01-01T00:00:00Z",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.env.do(t, http.MethodGet, "/api/profile/me", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var p profile.Profile
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	s.Equal([]string{"go", "sql"}, p.Skills)
	s.Require().Len(p.Experience, 1)

	// delete account and confirm the profile is gone with it
	w = s.env.do(t, http.MethodDelete, "/api/profile", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.env.do(t, http.MethodPost, "/api/auth", "", gin.H{
		"email": s.email, "password": "e2e_password_123",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}
