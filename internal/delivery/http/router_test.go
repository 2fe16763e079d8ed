package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"health-tracker/config"
	"health-tracker/internal/delivery/http/handler"
	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/infrastructure/database"
	"health-tracker/internal/repository"
	"health-tracker/internal/service"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/jwt"
	"health-tracker/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type allowList struct {
	mu  sync.Mutex
	ids map[string]bool
}

func (s *allowList) StorePair(_ context.Context, _ uint, accessID string, _ time.Duration, refreshID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[accessID] = true
	s.ids[refreshID] = true
	return nil
}

func (s *allowList) IsAccessValid(_ context.Context, _ uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[tokenID], nil
}

func (s *allowList) IsRefreshValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	return s.IsAccessValid(ctx, userID, tokenID)
}

func (s *allowList) RevokeRefresh(_ context.Context, _ uint, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, tokenID)
	return nil
}

func (s *allowList) Revoke(_ context.Context, _ uint, accessID, refreshID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, accessID)
	delete(s.ids, refreshID)
	return nil
}

func (s *allowList) RevokeAll(_ context.Context, _ uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = map[string]bool{}
	return nil
}

// newTestRouter wires the full stack against an in-memory database
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
	tokenStore := &allowList{ids: map[string]bool{}}
	v := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	healthRecordRepo := repository.NewHealthRecordRepository()
	foodRepo := repository.NewFoodRepository()
	dietRecordRepo := repository.NewDietRecordRepository()
	exerciseTypeRepo := repository.NewExerciseTypeRepository()
	exerciseRecordRepo := repository.NewExerciseRecordRepository()
	medicationTypeRepo := repository.NewMedicationTypeRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	contentResolver := service.NewContentResolver(log, repository.NewContentRepository(), true)

	handlers := Handlers{
		Auth: handler.NewAuthHandler(usecase.NewAuthUsecase(db, log, userRepo, jwtService, tokenStore, auditService), v),
		HealthRecord: handler.NewHealthRecordHandler(
			usecase.NewHealthRecordUsecase(db, log, healthRecordRepo, exerciseTypeRepo, medicationTypeRepo, auditService), v),
		Diet:           handler.NewDietHandler(usecase.NewDietUsecase(db, log, foodRepo, dietRecordRepo, auditService), v),
		Exercise:       handler.NewExerciseHandler(usecase.NewExerciseUsecase(db, log, exerciseTypeRepo, exerciseRecordRepo, auditService), v),
		MedicationType: handler.NewMedicationTypeHandler(usecase.NewMedicationTypeUsecase(db, log, medicationTypeRepo), v),
		WaterIntake:    handler.NewWaterIntakeHandler(usecase.NewWaterIntakeUsecase(db, log, repository.NewWaterIntakeRepository(), auditService), v),
		HealthGoal:     handler.NewHealthGoalHandler(usecase.NewHealthGoalUsecase(db, log, repository.NewHealthGoalRepository(), auditService), v),
		Analysis: handler.NewAnalysisHandler(usecase.NewAnalysisUsecase(db, log, userRepo, healthRecordRepo,
			dietRecordRepo, foodRepo, exerciseRecordRepo, exerciseTypeRepo)),
		Dashboard: handler.NewDashboardHandler(usecase.NewDashboardUsecase(db, log, healthRecordRepo, false)),
		HealthReport: handler.NewHealthReportHandler(usecase.NewHealthReportUsecase(db, log, repository.NewHealthReportRepository(),
			healthRecordRepo, dietRecordRepo, auditService, false)),
		Reminder: handler.NewReminderHandler(usecase.NewReminderUsecase(db, log, repository.NewReminderRepository(), healthRecordRepo, auditService), v),
		Social: handler.NewSocialHandler(usecase.NewSocialUsecase(db, log, repository.NewShareRepository(), repository.NewLikeRepository(),
			repository.NewCommentRepository(), contentResolver, auditService), v),
		AuditLog: handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(db, log, auditLogRepo)),
	}

	return NewRouter(handlers, middleware.NewAuthMiddleware(jwtService, tokenStore), middleware.NewCORSMiddleware(), "").Setup()
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

// registerAndLogin returns a fresh access token
func registerAndLogin(t *testing.T, router http.Handler) string {
	t.Helper()

	creds := map[string]string{"email": "alice@example.com", "password": "secret123"}
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", creds)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tokens struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)
	assert.Equal(t, int64(900), tokens.ExpiresIn)
	return tokens.AccessToken
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/water", "/api/v1/goals", "/api/v1/audit-logs"} {
		rec, _ := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestWaterRecordFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]interface{}{
		"water_amount": 300,
		"record_date":  "2026-10-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	var created struct {
		ID         uint   `json:"id"`
		RecordType string `json:"record_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "water", created.RecordType)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/water", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// a water record is not visible through another variant's routes
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/diet/"+strconv.FormatUint(uint64(created.ID), 10), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]interface{}{"water_amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestNonNumericIDDoesNotRoute(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/goals/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalysisServesOnlyNutritionAndExercise(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	for _, path := range []string{"/api/v1/analysis/comprehensive", "/api/v1/analysis/diet-recommendations", "/api/v1/sleep-records"} {
		rec, _ := doJSON(t, router, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestNutritionAnalysisWithoutMeals(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/analysis/nutrition?start_date=2026-10-07&end_date=2026-10-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data struct {
		Period struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Days      int    `json:"days"`
		} `json:"period"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "2026-10-01", data.Period.StartDate)
	assert.Equal(t, "2026-10-07", data.Period.EndDate)
	assert.Equal(t, 7, data.Period.Days)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuditTrailListsOwnEvents(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/audit-logs", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var logs []struct {
		ID     int64  `json:"id"`
		Action string `json:"action"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &logs))

	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{"user.register", "user.login"}, actions)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/audit-logs/"+strconv.FormatInt(logs[0].ID, 10), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/audit-logs/999", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAccount(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]interface{}{"water_amount": 300})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/water", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	creds := map[string]string{"email": "alice@example.com", "password": "secret123"}
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", creds)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardAndSummaryRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/water", token, map[string]interface{}{"water_amount": 1200})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/medications", token, map[string]interface{}{"medication_name": "阿司匹林", "time_taken": "08:00"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/chart-data?days=3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var chart struct {
		Labels      []string `json:"labels"`
		WaterIntake []int    `json:"water_intake"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &chart))
	assert.Len(t, chart.Labels, 3)
	assert.Equal(t, []int{0, 0, 12}, chart.WaterIntake)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/recent-records", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &recent))
	assert.Len(t, recent, 2)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/medications/schedule", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var schedule []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &schedule))
	require.Len(t, schedule, 1)
	assert.Equal(t, "阿司匹林", schedule[0]["medication_name"])

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/medications/schedule?date=tomorrow", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/exercise-records/summary?period=day&date=2026-01-01", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"total_activities":0`)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/diet-records/nutrition-summary", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/diet-records/nutrition-summary?date=bad", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
