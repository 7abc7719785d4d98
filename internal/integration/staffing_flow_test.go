package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/database"
	"staffhub/internal/database/migration"
	dbpostgres "staffhub/internal/database/postgres"
	"staffhub/internal/delivery/http/middleware"
	"staffhub/internal/delivery/http/routes"
	v1 "staffhub/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"access_token"`
}

type skillData struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type personnelData struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type projectData struct {
	ID int64 `json:"id"`
}

type matchData struct {
	PersonnelID       int64  `json:"personnel_id"`
	Name              string `json:"name"`
	MatchedCount      int    `json:"matched_count"`
	TotalRequirements int    `json:"total_requirements"`
	MatchPercentage   int    `json:"match_percentage"`
}

// Full staffing flow over HTTP: register an admin, build a small
// catalog, two personnel with ledgers, one project with two
// requirements, then verify the candidate ranking.
func TestIntegration_StaffingFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	cleanupTestRows(t, ctx, db)
	defer cleanupTestRows(t, ctx, db)

	app := newTestFiberApp(t, db)

	tok := registerAdmin(t, app, "it-admin@staffhub.test")
	if tok == "" {
		t.Fatalf("register: empty access_token")
	}

	goID := createSkill(t, app, tok, "Go IT-Test", "Programming Language")
	pgID := createSkill(t, app, tok, "PostgreSQL IT-Test", "Database")

	casey := createPersonnel(t, app, tok, "Casey IT-Test", "it-casey@staffhub.test", true)
	robin := createPersonnel(t, app, tok, "Robin IT-Test", "it-robin@staffhub.test", true)
	drew := createPersonnel(t, app, tok, "Drew IT-Test", "it-drew@staffhub.test", false)

	// Casey meets both requirements, Robin only one, Drew would meet
	// both but is unavailable.
	assignSkill(t, app, tok, casey, goID, "Expert")
	assignSkill(t, app, tok, casey, pgID, "Advanced")
	assignSkill(t, app, tok, robin, goID, "Advanced")
	assignSkill(t, app, tok, robin, pgID, "Beginner")
	assignSkill(t, app, tok, drew, goID, "Expert")
	assignSkill(t, app, tok, drew, pgID, "Expert")

	projectID := createProject(t, app, tok, "Gateway IT-Test", []map[string]any{
		{"skill_id": goID, "min_proficiency": "Advanced"},
		{"skill_id": pgID, "min_proficiency": "Intermediate"},
	})

	matches := fetchMatches(t, app, tok, projectID)
	if len(matches) != 2 {
		t.Fatalf("matches: expected 2 candidates, got %d: %+v", len(matches), matches)
	}
	if matches[0].PersonnelID != casey || matches[0].MatchPercentage != 100 {
		t.Fatalf("matches[0]: expected casey at 100, got %+v", matches[0])
	}
	if matches[1].PersonnelID != robin || matches[1].MatchPercentage != 50 {
		t.Fatalf("matches[1]: expected robin at 50, got %+v", matches[1])
	}
	if matches[1].MatchedCount != 1 || matches[1].TotalRequirements != 2 {
		t.Fatalf("matches[1]: expected 1/2, got %+v", matches[1])
	}
	for _, m := range matches {
		if m.PersonnelID == drew {
			t.Fatalf("matches: unavailable personnel must not appear")
		}
	}

	// Referenced skill cannot be deleted.
	res := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/skills/%d", goID), tok, nil)
	if res.Status != fiber.StatusConflict {
		t.Fatalf("delete referenced skill: expected 409, got %d (%s)", res.Status, res.Message)
	}

	// Re-assignment overwrites instead of duplicating, and answers 200.
	status := assignSkillStatus(t, app, tok, robin, pgID, "Intermediate")
	if status != fiber.StatusOK {
		t.Fatalf("re-assign: expected 200, got %d", status)
	}
	matches = fetchMatches(t, app, tok, projectID)
	if len(matches) != 2 || matches[1].PersonnelID != robin || matches[1].MatchPercentage != 100 {
		t.Fatalf("matches after upgrade: expected robin at 100, got %+v", matches)
	}
	// Both at 100 now; the tie breaks on the lower personnel id.
	if matches[0].PersonnelID != casey {
		t.Fatalf("matches after upgrade: expected casey first on tie, got %+v", matches[0])
	}
}

func newTestFiberApp(t *testing.T, db database.DB) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{AppName: "staffhub-test", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}

	f := fiber.New(fiber.Config{})
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.NewRegistry(v1.Deps{
		Config: cfg,
		DB:     db,
		Logger: log.New(io.Discard, "", 0),
	}).Register(f)

	return f
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := envOrDefault("STAFFHUB_TEST_DB_HOST", os.Getenv("DB_HOST"))
	port := envOrDefault("STAFFHUB_TEST_DB_PORT", os.Getenv("DB_PORT"))
	name := envOrDefault("STAFFHUB_TEST_DB_NAME", os.Getenv("DB_NAME"))
	user := envOrDefault("STAFFHUB_TEST_DB_USER", os.Getenv("DB_USER"))
	pass := envOrDefault("STAFFHUB_TEST_DB_PASSWORD", os.Getenv("DB_PASSWORD"))
	ssl := envOrDefault("STAFFHUB_TEST_DB_SSL_MODE", os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set STAFFHUB_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(root, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	return migDir
}

func cleanupTestRows(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	stmts := []string{
		`DELETE FROM project_requirements WHERE project_id IN (SELECT id FROM projects WHERE name LIKE '%IT-Test%')`,
		`DELETE FROM projects WHERE name LIKE '%IT-Test%'`,
		`DELETE FROM personnel_skills WHERE personnel_id IN (SELECT id FROM personnel WHERE email LIKE 'it-%@staffhub.test')`,
		`DELETE FROM personnel WHERE email LIKE 'it-%@staffhub.test'`,
		`DELETE FROM skills WHERE name LIKE '%IT-Test%'`,
		`DELETE FROM users WHERE email LIKE 'it-%@staffhub.test'`,
	}
	for _, q := range stmts {
		if _, err := db.Exec(ctx, q); err != nil {
			t.Fatalf("cleanup %q: %v", q, err)
		}
	}
}

type jsonResult struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) jsonResult {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("%s %s: marshal body: %v", method, path, err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	var envelope semanticResponse
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return jsonResult{Status: res.StatusCode, Message: envelope.Message, Data: envelope.Data}
}

func registerAdmin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	res := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":    email,
		"password": "it-test-password",
		"role":     "admin",
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", res.Status, res.Message)
	}

	var data authData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("register: decode data: %v", err)
	}
	return data.AccessToken
}

func createSkill(t *testing.T, app *fiber.App, token, name, category string) int64 {
	t.Helper()

	res := doJSON(t, app, http.MethodPost, "/api/v1/skills", token, map[string]any{
		"name":     name,
		"category": category,
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("create skill %q: expected 201, got %d (%s)", name, res.Status, res.Message)
	}

	var data skillData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("create skill %q: decode data: %v", name, err)
	}
	return data.ID
}

func createPersonnel(t *testing.T, app *fiber.App, token, name, email string, available bool) int64 {
	t.Helper()

	res := doJSON(t, app, http.MethodPost, "/api/v1/personnel", token, map[string]any{
		"name":             name,
		"email":            email,
		"role":             "Backend Engineer",
		"experience_level": "Senior",
		"is_available":     available,
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("create personnel %q: expected 201, got %d (%s)", name, res.Status, res.Message)
	}

	var data personnelData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("create personnel %q: decode data: %v", name, err)
	}
	return data.ID
}

func assignSkill(t *testing.T, app *fiber.App, token string, personnelID, skillID int64, level string) {
	t.Helper()

	if status := assignSkillStatus(t, app, token, personnelID, skillID, level); status != fiber.StatusCreated {
		t.Fatalf("assign skill %d to personnel %d: expected 201, got %d", skillID, personnelID, status)
	}
}

func assignSkillStatus(t *testing.T, app *fiber.App, token string, personnelID, skillID int64, level string) int {
	t.Helper()

	res := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/personnel/%d/skills", personnelID), token, map[string]any{
		"skill_id":          skillID,
		"proficiency_level": level,
	})
	return res.Status
}

func createProject(t *testing.T, app *fiber.App, token, name string, requirements []map[string]any) int64 {
	t.Helper()

	res := doJSON(t, app, http.MethodPost, "/api/v1/projects", token, map[string]any{
		"name":         name,
		"description":  "Integration test project for candidate matching",
		"start_date":   "2026-10-01",
		"end_date":     "2027-01-01",
		"requirements": requirements,
	})
	if res.Status != fiber.StatusCreated {
		t.Fatalf("create project %q: expected 201, got %d (%s)", name, res.Status, res.Message)
	}

	var data projectData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("create project %q: decode data: %v", name, err)
	}
	return data.ID
}

func fetchMatches(t *testing.T, app *fiber.App, token string, projectID int64) []matchData {
	t.Helper()

	res := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/matches", projectID), token, nil)
	if res.Status != fiber.StatusOK {
		t.Fatalf("matches: expected 200, got %d (%s)", res.Status, res.Message)
	}

	var data []matchData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		t.Fatalf("matches: decode data: %v", err)
	}
	return data
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
