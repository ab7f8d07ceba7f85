package http

import (
	"net/http"

	_ "teleradiology-api/docs"
	"teleradiology-api/internal/delivery/http/handler"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	authHandler        *handler.AuthHandler
	userHandler        *handler.UserHandler
	contentHandler     *handler.ContentHandler
	contactHandler     *handler.ContactHandler
	applicationHandler *handler.ApplicationHandler
	leadHandler        *handler.SalesLeadHandler
	uploadHandler      *handler.UploadHandler
	dashboardHandler   *handler.DashboardHandler
	auditLogHandler    *handler.AuditLogHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	rateLimit          *middleware.RateLimitMiddleware
	realIP             *middleware.RealIPMiddleware
	errorHandler       *middleware.ErrorHandler
}

type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Content     *handler.ContentHandler
	Contact     *handler.ContactHandler
	Application *handler.ApplicationHandler
	SalesLead   *handler.SalesLeadHandler
	Upload      *handler.UploadHandler
	Dashboard   *handler.DashboardHandler
	AuditLog    *handler.AuditLogHandler
	Health      *handler.HealthHandler
}

func NewRouter(
	log *logrus.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	realIP *middleware.RealIPMiddleware,
	errorHandler *middleware.ErrorHandler,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                log,
		authHandler:        handlers.Auth,
		userHandler:        handlers.User,
		contentHandler:     handlers.Content,
		contactHandler:     handlers.Contact,
		applicationHandler: handlers.Application,
		leadHandler:        handlers.SalesLead,
		uploadHandler:      handlers.Upload,
		dashboardHandler:   handlers.Dashboard,
		auditLogHandler:    handlers.AuditLog,
		healthHandler:      handlers.Health,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		rateLimit:          rateLimit,
		realIP:             realIP,
		errorHandler:       errorHandler,
	}
}

// authed requires a valid access token.
func (r *Router) authed(h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(h)
}

// guarded requires a valid access token whose role grants permission.
func (r *Router) guarded(permission string, h http.HandlerFunc) http.Handler {
	return r.authMiddleware.Authenticate(middleware.Permit(permission, h))
}

// Setup registers every route and returns the root handler. Recovery, request
// logging and CORS wrap the mux itself so that they also see unmatched routes
// and preflight requests.
func (r *Router) Setup() http.Handler {
	r.router.PathPrefix("/api-docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	api := r.router.PathPrefix("/api").Subrouter()
	api.Use(r.rateLimit.API)

	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	r.registerAuth(api)
	r.registerUsers(api)
	r.registerContent(api)
	r.registerContact(api)
	r.registerApplications(api)
	r.registerLeads(api)
	r.registerUploads(api)

	api.Handle("/dashboard/stats", r.guarded(entity.PermDashboardRead, r.dashboardHandler.GetStats)).Methods(http.MethodGet)
	api.Handle("/dashboard/recent", r.guarded(entity.PermDashboardRead, r.dashboardHandler.GetRecent)).Methods(http.MethodGet)

	api.Handle("/audit-logs", r.guarded(entity.PermAuditRead, r.auditLogHandler.GetAllAuditLogs)).Methods(http.MethodGet)
	api.Handle("/audit-logs/{id}", r.guarded(entity.PermAuditRead, r.auditLogHandler.GetAuditLog)).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Route "+req.URL.Path+" not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = middleware.RequestLogger(r.log)(h)
	h = r.realIP.Handle(h)
	h = r.errorHandler.Recover(h)
	return h
}

func (r *Router) registerAuth(api *mux.Router) {
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Handle("/register", r.rateLimit.Auth(http.HandlerFunc(r.authHandler.Register))).Methods(http.MethodPost)
	auth.Handle("/login", r.rateLimit.Auth(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	auth.Handle("/forgot-password", r.rateLimit.Auth(http.HandlerFunc(r.authHandler.ForgotPassword))).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)
	auth.HandleFunc("/verify-email", r.authHandler.VerifyEmail).Methods(http.MethodPost)

	auth.Handle("/logout", r.authed(r.authHandler.Logout)).Methods(http.MethodPost)
	auth.Handle("/me", r.authed(r.authHandler.GetCurrentUser)).Methods(http.MethodGet)
	auth.Handle("/profile", r.authed(r.authHandler.UpdateProfile)).Methods(http.MethodPut)
	auth.Handle("/change-password", r.authed(r.authHandler.ChangePassword)).Methods(http.MethodPut)
	auth.Handle("/resend-verification", r.authed(r.authHandler.ResendVerification)).Methods(http.MethodPost)
}

func (r *Router) registerUsers(api *mux.Router) {
	h := r.userHandler
	users := api.PathPrefix("/users").Subrouter()
	users.Handle("", r.guarded(entity.PermUsersRead, h.GetAllUsers)).Methods(http.MethodGet)
	users.Handle("", r.guarded(entity.PermUsersCreate, h.CreateUser)).Methods(http.MethodPost)
	users.Handle("/stats", r.guarded(entity.PermUsersRead, h.GetStats)).Methods(http.MethodGet)
	users.Handle("/{id}", r.guarded(entity.PermUsersRead, h.GetUser)).Methods(http.MethodGet)
	users.Handle("/{id}", r.guarded(entity.PermUsersUpdate, h.UpdateUser)).Methods(http.MethodPut)
	users.Handle("/{id}/role", r.guarded(entity.PermUsersUpdate, h.UpdateRole)).Methods(http.MethodPatch)
	users.Handle("/{id}/status", r.guarded(entity.PermUsersUpdate, h.UpdateStatus)).Methods(http.MethodPatch)
	users.Handle("/{id}/unlock", r.guarded(entity.PermUsersUpdate, h.UnlockUser)).Methods(http.MethodPost)
	users.Handle("/{id}", r.guarded(entity.PermUsersDelete, h.DeleteUser)).Methods(http.MethodDelete)
}

func (r *Router) registerContent(api *mux.Router) {
	h := r.contentHandler
	cms := api.PathPrefix("/cms").Subrouter()

	// public
	cms.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
	cms.HandleFunc("/tags", h.GetTags).Methods(http.MethodGet)
	cms.HandleFunc("/public", h.GetPublishedContent).Methods(http.MethodGet)
	cms.HandleFunc("/public/{slug}", h.GetPublishedBySlug).Methods(http.MethodGet)
	api.HandleFunc("/services", h.GetServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{slug}", h.GetServiceBySlug).Methods(http.MethodGet)

	cms.Handle("/analytics", r.guarded(entity.PermContentRead, h.GetAnalytics)).Methods(http.MethodGet)
	cms.Handle("/content", r.guarded(entity.PermContentRead, h.GetAllContent)).Methods(http.MethodGet)
	cms.Handle("/content", r.guarded(entity.PermContentCreate, h.CreateContent)).Methods(http.MethodPost)
	cms.Handle("/content/{id}", r.guarded(entity.PermContentRead, h.GetContent)).Methods(http.MethodGet)
	cms.Handle("/content/{id}", r.guarded(entity.PermContentUpdate, h.UpdateContent)).Methods(http.MethodPut)
	cms.Handle("/content/{id}", r.guarded(entity.PermContentDelete, h.DeleteContent)).Methods(http.MethodDelete)
	cms.Handle("/content/{id}/publish", r.guarded(entity.PermContentPublish, h.PublishContent)).Methods(http.MethodPatch)
	cms.Handle("/content/{id}/unpublish", r.guarded(entity.PermContentPublish, h.UnpublishContent)).Methods(http.MethodPatch)
	cms.Handle("/content/{id}/archive", r.guarded(entity.PermContentPublish, h.ArchiveContent)).Methods(http.MethodPatch)
	cms.Handle("/content/{id}/versions", r.guarded(entity.PermContentRead, h.GetVersions)).Methods(http.MethodGet)
	cms.Handle("/content/{id}/versions/{version}/restore", r.guarded(entity.PermContentUpdate, h.RestoreVersion)).Methods(http.MethodPost)
}

func (r *Router) registerContact(api *mux.Router) {
	h := r.contactHandler
	contact := api.PathPrefix("/contact").Subrouter()
	contact.Handle("", r.rateLimit.Form(http.HandlerFunc(h.CreateContact))).Methods(http.MethodPost)
	contact.Handle("", r.guarded(entity.PermContactsRead, h.GetAllContacts)).Methods(http.MethodGet)
	contact.Handle("/stats", r.guarded(entity.PermContactsRead, h.GetStats)).Methods(http.MethodGet)
	contact.Handle("/{id}", r.guarded(entity.PermContactsRead, h.GetContact)).Methods(http.MethodGet)
	contact.Handle("/{id}/status", r.guarded(entity.PermContactsUpdate, h.UpdateStatus)).Methods(http.MethodPatch)
	contact.Handle("/{id}/assign", r.guarded(entity.PermContactsUpdate, h.AssignContact)).Methods(http.MethodPatch)
	contact.Handle("/{id}/notes", r.guarded(entity.PermContactsUpdate, h.AddNote)).Methods(http.MethodPost)
	contact.Handle("/{id}", r.guarded(entity.PermContactsDelete, h.DeleteContact)).Methods(http.MethodDelete)
}

func (r *Router) registerApplications(api *mux.Router) {
	h := r.applicationHandler
	apps := api.PathPrefix("/radiologist-applications").Subrouter()
	apps.Handle("", r.rateLimit.Form(http.HandlerFunc(h.CreateApplication))).Methods(http.MethodPost)
	apps.Handle("", r.guarded(entity.PermApplicationsRead, h.GetAllApplications)).Methods(http.MethodGet)
	apps.Handle("/stats", r.guarded(entity.PermApplicationsRead, h.GetStats)).Methods(http.MethodGet)
	apps.Handle("/{id}", r.guarded(entity.PermApplicationsRead, h.GetApplication)).Methods(http.MethodGet)
	apps.Handle("/{id}", r.guarded(entity.PermApplicationsUpdate, h.UpdateApplication)).Methods(http.MethodPut)
	apps.Handle("/{id}/review", r.guarded(entity.PermApplicationsReview, h.MarkUnderReview)).Methods(http.MethodPatch)
	apps.Handle("/{id}/approve", r.guarded(entity.PermApplicationsReview, h.ApproveApplication)).Methods(http.MethodPatch)
	apps.Handle("/{id}/reject", r.guarded(entity.PermApplicationsReview, h.RejectApplication)).Methods(http.MethodPatch)
	apps.Handle("/{id}/hold", r.guarded(entity.PermApplicationsReview, h.HoldApplication)).Methods(http.MethodPatch)
	apps.Handle("/{id}", r.guarded(entity.PermApplicationsDelete, h.DeleteApplication)).Methods(http.MethodDelete)
}

func (r *Router) registerLeads(api *mux.Router) {
	h := r.leadHandler
	leads := api.PathPrefix("/sales-leads").Subrouter()
	leads.Handle("", r.rateLimit.Form(http.HandlerFunc(h.CreateLead))).Methods(http.MethodPost)
	leads.Handle("", r.guarded(entity.PermLeadsRead, h.GetAllLeads)).Methods(http.MethodGet)
	leads.Handle("/stats", r.guarded(entity.PermLeadsRead, h.GetStats)).Methods(http.MethodGet)
	leads.Handle("/{id}", r.guarded(entity.PermLeadsRead, h.GetLead)).Methods(http.MethodGet)
	leads.Handle("/{id}", r.guarded(entity.PermLeadsUpdate, h.UpdateLead)).Methods(http.MethodPut)
	leads.Handle("/{id}/status", r.guarded(entity.PermLeadsUpdate, h.UpdateStatus)).Methods(http.MethodPatch)
	leads.Handle("/{id}/assign", r.guarded(entity.PermLeadsUpdate, h.AssignLead)).Methods(http.MethodPatch)
	leads.Handle("/{id}/qualify", r.guarded(entity.PermLeadsUpdate, h.QualifyLead)).Methods(http.MethodPatch)
	leads.Handle("/{id}/close", r.guarded(entity.PermLeadsUpdate, h.CloseLead)).Methods(http.MethodPatch)
	leads.Handle("/{id}/notes", r.guarded(entity.PermLeadsUpdate, h.AddNote)).Methods(http.MethodPost)
	leads.Handle("/{id}", r.guarded(entity.PermLeadsDelete, h.DeleteLead)).Methods(http.MethodDelete)
}

// registerUploads leaves the per-category guards to the handler; OptionalAuth
// only attaches the caller when a token is present.
func (r *Router) registerUploads(api *mux.Router) {
	h := r.uploadHandler
	uploads := api.PathPrefix("/uploads").Subrouter()
	uploads.Use(r.authMiddleware.OptionalAuth)

	uploads.Handle("/{category:resumes}", r.rateLimit.Form(http.HandlerFunc(h.Upload))).Methods(http.MethodPost)
	uploads.HandleFunc("/{category}", h.Upload).Methods(http.MethodPost)
	uploads.HandleFunc("/{category}", h.List).Methods(http.MethodGet)
	uploads.HandleFunc("/{category}/{name}", h.Serve).Methods(http.MethodGet)
	uploads.HandleFunc("/{category}/{name}", h.Delete).Methods(http.MethodDelete)
}
