package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/qatalent/jobboard/internal/domain/auth"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      AuthServiceInterface
	Directory DirectoryServiceInterface
	Catalog   CatalogServiceInterface
	Ledger    LedgerServiceInterface

	CookieDomain string
	LogoutURL    string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		LogoutURL:    services.LogoutURL,
		Logger:       logger,
	}
	userHandlers := &UserHandlers{Directory: services.Directory}
	jobHandlers := &JobHandlers{Catalog: services.Catalog, Ledger: services.Ledger}
	applicationHandlers := &ApplicationHandlers{Ledger: services.Ledger}
	employerHandlers := &EmployerHandlers{Catalog: services.Catalog, Ledger: services.Ledger}

	requireSession := RequireSession(services.Auth)
	requireUser := RequireUser(services.Auth, services.Directory)
	requireJobSeeker := RequireRole(services.Auth, services.Directory, domainauth.RoleJobSeeker)
	requireEmployer := RequireRole(services.Auth, services.Directory, domainauth.RoleEmployer)
	requireAdmin := RequireRole(services.Auth, services.Directory, domainauth.RoleAdmin)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Login flow
	mux.HandleFunc("GET /auth/login", authHandlers.Login)
	mux.HandleFunc("GET /auth/callback", authHandlers.Callback)
	mux.HandleFunc("POST /auth/logout", authHandlers.Logout)
	mux.HandleFunc("GET /auth/status", authHandlers.Status)

	// Directory
	mux.Handle("GET /api/auth/user", requireSession(http.HandlerFunc(userHandlers.CurrentUser)))
	mux.Handle("POST /api/auth/user", requireSession(http.HandlerFunc(userHandlers.ProvisionUser)))
	mux.Handle("POST /api/profile/job-seeker", requireUser(http.HandlerFunc(userHandlers.SetJobSeekerProfile)))
	mux.Handle("POST /api/profile/employer", requireUser(http.HandlerFunc(userHandlers.SetEmployerProfile)))
	mux.Handle("GET /api/admin/stats", requireAdmin(http.HandlerFunc(userHandlers.AdminStats)))

	// Public catalog
	mux.HandleFunc("GET /api/jobs", jobHandlers.List)
	mux.HandleFunc("GET /api/jobs/{id}", jobHandlers.Get)

	// Job seeker surface
	mux.Handle("POST /api/jobs/{id}/apply", requireJobSeeker(http.HandlerFunc(jobHandlers.Apply)))
	mux.Handle("GET /api/jobs/{id}/application-status", requireUser(http.HandlerFunc(jobHandlers.ApplicationStatus)))
	mux.Handle("GET /api/applications/my-applications", requireUser(http.HandlerFunc(applicationHandlers.MyApplications)))
	mux.Handle("GET /api/applications/{id}", requireUser(http.HandlerFunc(applicationHandlers.Get)))

	// Employer surface
	mux.Handle("PATCH /api/applications/{id}/status", requireEmployer(http.HandlerFunc(applicationHandlers.UpdateStatus)))
	mux.Handle("GET /api/employer/jobs", requireEmployer(http.HandlerFunc(employerHandlers.ListJobs)))
	mux.Handle("POST /api/employer/jobs", requireEmployer(http.HandlerFunc(employerHandlers.CreateJob)))
	mux.Handle("PATCH /api/employer/jobs/{id}", requireEmployer(http.HandlerFunc(employerHandlers.UpdateJob)))
	mux.Handle("DELETE /api/employer/jobs/{id}", requireEmployer(http.HandlerFunc(employerHandlers.DeleteJob)))
	mux.Handle("GET /api/employer/jobs/{id}/applications", requireEmployer(http.HandlerFunc(employerHandlers.ListJobApplications)))
	mux.Handle("GET /api/employer/stats", requireEmployer(http.HandlerFunc(employerHandlers.Stats)))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
