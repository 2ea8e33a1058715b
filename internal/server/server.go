package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"pasithulir/internal/admin"
	"pasithulir/internal/storage"
	"pasithulir/internal/store"
	"pasithulir/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS

var decoder = form.NewDecoder()
var validate = validator.New()

// AdminPredicate decides whether an authenticated email may administer the
// site. Injected so the rule lives in configuration, not in a handler.
type AdminPredicate func(email string) bool

type Service struct {
	logger *logrus.Logger
	config *types.Config

	donationRepo *store.DonationRepository
	requestRepo  *store.RequestRepository
	contactRepo  *store.ContactRepository
	boardRepo    *store.BoardRepository

	dashboard   *admin.Dashboard
	dashboardMu sync.Mutex

	exportArchive *storage.ExportArchive

	templates *template.Template

	cognitoClient *cognitoidentityprovider.Client
	cookie        *securecookie.SecureCookie
	isAdmin       AdminPredicate

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	donationRepo *store.DonationRepository,
	requestRepo *store.RequestRepository,
	contactRepo *store.ContactRepository,
	boardRepo *store.BoardRepository,
	exportArchive *storage.ExportArchive,
	isAdmin AdminPredicate,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:        logger,
		config:        config,
		cognitoClient: cognitoClient,
		cookie:        securecookie.New(hashKey, blockKey),

		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		contactRepo:  contactRepo,
		boardRepo:    boardRepo,

		dashboard: admin.NewDashboard(donationRepo, requestRepo),

		exportArchive: exportArchive,
		isAdmin:       isAdmin,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/about", s.handleAbout, http.MethodGet)
	r.HandleFunc("/contact", s.handleGetContact, http.MethodGet)
	r.HandleFunc("/contact", s.handlePostContact, http.MethodPost)

	r.HandleFunc("/donate", s.handleGetDonate, http.MethodGet)
	r.HandleFunc("/donate", s.handlePostDonate, http.MethodPost)
	r.HandleFunc("/request", s.handleGetRequest, http.MethodGet)
	r.HandleFunc("/request", s.handlePostRequest, http.MethodPost)

	r.HandleFunc("/live-board", s.handleLiveBoard, http.MethodGet)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)
		r.Use(s.RequireAdmin)

		r.HandleFunc("/admin", s.handleAdminDashboard, http.MethodGet)
		r.HandleFunc("/admin/requests/:id/approve", s.handleApproveRequest, http.MethodPost)
		r.HandleFunc("/admin/requests/:id/finish", s.handleFinishRequest, http.MethodPost)
		r.HandleFunc("/admin/donations/:id/finish", s.handleFinishDonation, http.MethodPost)
		r.HandleFunc("/admin/export", s.handleExport, http.MethodGet)
	})

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil {
				return defaultVal
			}
			return *s
		},
		"datetime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 3:04 PM")
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
