package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Pranav7758/digital-setu-hub/internal/api/http/handler"
	"github.com/Pranav7758/digital-setu-hub/internal/api/http/middleware"
	"github.com/Pranav7758/digital-setu-hub/internal/logger"
	"github.com/Pranav7758/digital-setu-hub/internal/service"
)

// Router assembles the HTTP surface: the public share gateway, the
// authenticated owner API and the liveness probe.
type Router struct {
	shareService     *service.Share
	authService      *service.Auth
	documentService  *service.Document
	checklistService *service.Checklist
	tokenParser      middleware.TokenParser
	logger           *logger.Logger
}

// New creates a new Router instance.
func New(
	shareService *service.Share,
	authService *service.Auth,
	documentService *service.Document,
	checklistService *service.Checklist,
	tokenParser middleware.TokenParser,
	logger *logger.Logger,
) *Router {
	return &Router{
		shareService:     shareService,
		authService:      authService,
		documentService:  documentService,
		checklistService: checklistService,
		tokenParser:      tokenParser,
		logger:           logger,
	}
}

// Register builds the route tree with CORS, logging and authentication
// middleware configured.
func (r *Router) Register() http.Handler {
	cors := middleware.NewCORS()
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenParser, r.logger)

	share := handler.NewShare(r.shareService, r.logger)
	auth := handler.NewAuth(r.authService, r.logger)
	document := handler.NewDocument(r.documentService, r.logger)
	checklist := handler.NewChecklist(r.checklistService, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(cors.Handle)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondJSONError(w, http.StatusNotFound, "not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	mux.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Route("/share", func(mux chi.Router) {
		mux.Get("/", share.Page)
		mux.Post("/", share.Unlock)
	})

	mux.Route("/api", func(mux chi.Router) {
		mux.Post("/auth/signup", auth.SignUp)
		mux.Post("/auth/signin", auth.SignIn)

		mux.Group(func(mux chi.Router) {
			mux.Use(authenticate.Handle)

			mux.Post("/auth/pin", auth.SetPIN)

			mux.Route("/documents", func(mux chi.Router) {
				mux.Get("/", document.List)
				mux.Post("/", document.Upload)
				mux.Get("/{id}/url", document.ViewURL)
				mux.Delete("/{id}", document.Delete)
			})

			mux.Get("/checklists", checklist.List)
			mux.Get("/checklists/{purpose}", checklist.Get)
		})
	})

	return mux
}

func respondJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}
