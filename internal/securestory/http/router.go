package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/jwtx"
	"github.com/aussiebroadwan/securestory/pkg/slogx"

	_ "github.com/aussiebroadwan/securestory/api/securestory" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var writerRoles = []string{"admin", "analyst"}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	gitSHA       string
	startTime    time.Time
	logger       *slog.Logger

	store            store.Store
	AuthService      *service.AuthService
	ResetService     *service.PasswordResetService
	ProjectService   *service.ProjectService
	FindingService   *service.FindingService
	DashboardService *service.DashboardService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, gitSHA string,
	allowedOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		gitSHA:       gitSHA,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowedOrigins),
		httpx.RateLimitByIP(httpx.GlobalLimit),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProjects()
	r.registerFindings()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SecureStory API
//	@version		0.1.0
//	@description	Security findings tracker: ingest scanner findings per project and read risk dashboards.
//	@description
//	@description				Access tokens are HS256 JWTs obtained from /auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/securestory
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8001
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:  r.AuthService,
		ResetService: r.ResetService,
	}

	// Password reset - strict rate limit by IP + email
	r.Mux.Handle("POST /auth/forgot_password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/reset_password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /auth/login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	// POST /auth/register - anonymous only for the first account
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.OptionalAuthn(r.verifier),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /projects",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
		),
	)
	r.Mux.Handle("POST /projects",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(writerRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerFindings() {
	h := &FindingsHandler{FindingService: r.FindingService}

	r.Mux.Handle("GET /findings",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
		),
	)

	// POST /findings/ingest - global limit only, scanners post in bulk
	r.Mux.Handle("POST /findings/ingest",
		httpx.Chain(http.HandlerFunc(h.HandleIngest),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(writerRoles...),
		),
	)
	r.Mux.Handle("POST /findings/{id}/resolve",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyRole(writerRoles...),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{DashboardService: r.DashboardService}

	authed := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.AuthnMiddleware(r.verifier))
	}

	r.Mux.Handle("GET /dash/severity_counts", authed(h.HandleSeverityCounts))
	r.Mux.Handle("GET /dash/risk_score", authed(h.HandleRiskScore))
	r.Mux.Handle("GET /dash/mttr", authed(h.HandleMTTR))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /health", HealthHandler(time.Now))
	r.Mux.Handle("GET /version", VersionHandler(r.gitSHA))
}
