package http

import (
	"net/http"

	"health-tracker/internal/delivery/http/handler"
	"health-tracker/internal/delivery/http/middleware"
	"health-tracker/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth           *handler.AuthHandler
	HealthRecord   *handler.HealthRecordHandler
	Diet           *handler.DietHandler
	Exercise       *handler.ExerciseHandler
	MedicationType *handler.MedicationTypeHandler
	WaterIntake    *handler.WaterIntakeHandler
	HealthGoal     *handler.HealthGoalHandler
	Analysis       *handler.AnalysisHandler
	Dashboard      *handler.DashboardHandler
	HealthReport   *handler.HealthReportHandler
	Reminder       *handler.ReminderHandler
	Social         *handler.SocialHandler
	AuditLog       *handler.AuditLogHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	metricsPath    string
}

// NewRouter builds the router; an empty metricsPath disables the scrape endpoint
func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	metricsPath string,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		metricsPath:    metricsPath,
	}
}

const idPath = "/{id:[0-9]+}"

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	if r.metricsPath != "" {
		r.router.Handle(r.metricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Everything below requires a bearer token
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", h.Auth.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/auth/me", h.Auth.DeleteAccount).Methods(http.MethodDelete)
	protected.HandleFunc("/auth/user", h.Auth.DeleteAccount).Methods(http.MethodDelete)
	protected.HandleFunc("/profile", h.Auth.GetCurrentUser).Methods(http.MethodGet)
	protected.HandleFunc("/profile", h.Auth.UpdateProfile).Methods(http.MethodPut)

	// Health records, generic view
	protected.HandleFunc("/health-records", h.HealthRecord.List).Methods(http.MethodGet)
	protected.HandleFunc("/health-records"+idPath, h.HealthRecord.GetOf("")).Methods(http.MethodGet)
	protected.HandleFunc("/health-records"+idPath, h.HealthRecord.DeleteOf("")).Methods(http.MethodDelete)

	protected.HandleFunc("/medications/schedule", h.HealthRecord.MedicationSchedule).Methods(http.MethodGet)

	// Health records, one route group per variant
	variants := []struct {
		prefix     string
		recordType entity.RecordType
		create     http.HandlerFunc
		update     http.HandlerFunc
	}{
		{"/health-metrics", entity.RecordTypeHealth, h.HealthRecord.CreateHealthMetrics, h.HealthRecord.UpdateHealthMetrics},
		{"/diet", entity.RecordTypeDiet, h.HealthRecord.CreateDiet, h.HealthRecord.UpdateDiet},
		{"/exercises", entity.RecordTypeExercise, h.HealthRecord.CreateExercise, h.HealthRecord.UpdateExercise},
		{"/water", entity.RecordTypeWater, h.HealthRecord.CreateWater, h.HealthRecord.UpdateWater},
		{"/medications", entity.RecordTypeMedication, h.HealthRecord.CreateMedication, h.HealthRecord.UpdateMedication},
	}
	for _, v := range variants {
		protected.HandleFunc(v.prefix, v.create).Methods(http.MethodPost)
		protected.HandleFunc(v.prefix, h.HealthRecord.ListOf(v.recordType)).Methods(http.MethodGet)
		protected.HandleFunc(v.prefix+idPath, h.HealthRecord.GetOf(v.recordType)).Methods(http.MethodGet)
		protected.HandleFunc(v.prefix+idPath, v.update).Methods(http.MethodPut)
		protected.HandleFunc(v.prefix+idPath, h.HealthRecord.DeleteOf(v.recordType)).Methods(http.MethodDelete)
	}

	// Catalogs
	protected.HandleFunc("/foods", h.Diet.CreateFood).Methods(http.MethodPost)
	protected.HandleFunc("/foods", h.Diet.ListFoods).Methods(http.MethodGet)
	protected.HandleFunc("/foods"+idPath, h.Diet.GetFood).Methods(http.MethodGet)

	protected.HandleFunc("/exercise-types", h.Exercise.CreateType).Methods(http.MethodPost)
	protected.HandleFunc("/exercise-types", h.Exercise.ListTypes).Methods(http.MethodGet)
	protected.HandleFunc("/exercise-types/seed", h.Exercise.SeedTypes).Methods(http.MethodPost)
	protected.HandleFunc("/exercise-types"+idPath, h.Exercise.GetType).Methods(http.MethodGet)

	protected.HandleFunc("/medication-types", h.MedicationType.Create).Methods(http.MethodPost)
	protected.HandleFunc("/medication-types", h.MedicationType.List).Methods(http.MethodGet)
	protected.HandleFunc("/medication-types"+idPath, h.MedicationType.Get).Methods(http.MethodGet)

	// Normalized logs
	protected.HandleFunc("/diet-records", h.Diet.CreateMeal).Methods(http.MethodPost)
	protected.HandleFunc("/diet-records", h.Diet.ListMeals).Methods(http.MethodGet)
	protected.HandleFunc("/diet-records/nutrition-summary", h.Diet.NutritionSummary).Methods(http.MethodGet)
	protected.HandleFunc("/diet-records"+idPath, h.Diet.GetMeal).Methods(http.MethodGet)
	protected.HandleFunc("/diet-records"+idPath, h.Diet.DeleteMeal).Methods(http.MethodDelete)

	protected.HandleFunc("/exercise-records", h.Exercise.CreateRecord).Methods(http.MethodPost)
	protected.HandleFunc("/exercise-records", h.Exercise.ListRecords).Methods(http.MethodGet)
	protected.HandleFunc("/exercise-records/summary", h.Exercise.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/exercise-records"+idPath, h.Exercise.DeleteRecord).Methods(http.MethodDelete)

	protected.HandleFunc("/water-intakes", h.WaterIntake.Create).Methods(http.MethodPost)
	protected.HandleFunc("/water-intakes", h.WaterIntake.List).Methods(http.MethodGet)
	protected.HandleFunc("/water-intakes/summary/daily", h.WaterIntake.DailySummary).Methods(http.MethodGet)
	protected.HandleFunc("/water-intakes/summary/range", h.WaterIntake.RangeSummary).Methods(http.MethodGet)
	protected.HandleFunc("/water-intakes"+idPath, h.WaterIntake.Get).Methods(http.MethodGet)
	protected.HandleFunc("/water-intakes"+idPath, h.WaterIntake.Delete).Methods(http.MethodDelete)

	// Goals
	protected.HandleFunc("/goals", h.HealthGoal.Create).Methods(http.MethodPost)
	protected.HandleFunc("/goals", h.HealthGoal.List).Methods(http.MethodGet)
	protected.HandleFunc("/goals"+idPath, h.HealthGoal.Get).Methods(http.MethodGet)
	protected.HandleFunc("/goals"+idPath, h.HealthGoal.Update).Methods(http.MethodPut)
	protected.HandleFunc("/goals"+idPath, h.HealthGoal.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/goals"+idPath+"/logs", h.HealthGoal.AddLog).Methods(http.MethodPost)
	protected.HandleFunc("/goals"+idPath+"/logs", h.HealthGoal.ListLogs).Methods(http.MethodGet)

	// Analysis
	protected.HandleFunc("/analysis/nutrition", h.Analysis.Nutrition).Methods(http.MethodGet)
	protected.HandleFunc("/analysis/exercise", h.Analysis.Exercise).Methods(http.MethodGet)

	// Dashboard
	protected.HandleFunc("/dashboard/chart-data", h.Dashboard.ChartData).Methods(http.MethodGet)
	protected.HandleFunc("/recent-records", h.Dashboard.RecentRecords).Methods(http.MethodGet)

	// Reports
	protected.HandleFunc("/reports", h.HealthReport.Generate).Methods(http.MethodPost)
	protected.HandleFunc("/reports", h.HealthReport.List).Methods(http.MethodGet)
	protected.HandleFunc("/reports"+idPath, h.HealthReport.Get).Methods(http.MethodGet)
	protected.HandleFunc("/reports"+idPath, h.HealthReport.Delete).Methods(http.MethodDelete)

	// Reminders
	protected.HandleFunc("/reminders", h.Reminder.List).Methods(http.MethodGet)
	protected.HandleFunc("/reminders/pending", h.Reminder.ListPending).Methods(http.MethodGet)
	protected.HandleFunc("/reminders/medication", h.Reminder.CreateMedication).Methods(http.MethodPost)
	protected.HandleFunc("/reminders/appointment", h.Reminder.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/reminders/generate", h.Reminder.Generate).Methods(http.MethodPost)
	protected.HandleFunc("/reminders"+idPath, h.Reminder.Update).Methods(http.MethodPut)
	protected.HandleFunc("/reminders"+idPath, h.Reminder.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/reminders"+idPath+"/complete", h.Reminder.Complete).Methods(http.MethodPost)

	// Social
	protected.HandleFunc("/shares", h.Social.CreateShare).Methods(http.MethodPost)
	protected.HandleFunc("/shares", h.Social.ListShares).Methods(http.MethodGet)
	protected.HandleFunc("/shares"+idPath, h.Social.GetShare).Methods(http.MethodGet)
	protected.HandleFunc("/shares"+idPath, h.Social.UpdateShare).Methods(http.MethodPut)
	protected.HandleFunc("/shares"+idPath, h.Social.DeleteShare).Methods(http.MethodDelete)
	protected.HandleFunc("/shares"+idPath+"/like", h.Social.Like).Methods(http.MethodPost)
	protected.HandleFunc("/shares"+idPath+"/like", h.Social.Unlike).Methods(http.MethodDelete)
	protected.HandleFunc("/shares"+idPath+"/likes", h.Social.ListLikes).Methods(http.MethodGet)
	protected.HandleFunc("/shares"+idPath+"/comments", h.Social.AddComment).Methods(http.MethodPost)
	protected.HandleFunc("/shares"+idPath+"/comments", h.Social.ListComments).Methods(http.MethodGet)
	protected.HandleFunc("/comments"+idPath, h.Social.UpdateComment).Methods(http.MethodPut)
	protected.HandleFunc("/comments"+idPath, h.Social.DeleteComment).Methods(http.MethodDelete)

	// Audit trail
	protected.HandleFunc("/audit-logs", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)
	protected.HandleFunc("/audit-logs"+idPath, h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.Metrics)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
