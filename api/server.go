package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mediassist/mediassist-api/external/gemini"
	"github.com/mediassist/mediassist-api/geo"
	"github.com/mediassist/mediassist-api/intake"
	"github.com/mediassist/mediassist-api/logmodule"
	"github.com/mediassist/mediassist-api/predictor"
	"github.com/mediassist/mediassist-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	sessions store.SessionStore
	chats    store.ChatStore

	// Intake state machine
	machine *intake.Machine

	// Prediction dispatch
	registry *predictor.Registry

	// External facility providers, queried concurrently
	finders []geo.FacilityFinder

	// AI assistant collaborator, nil when unconfigured
	assistant gemini.Chat
}

// NewServer new instance of server
func NewServer(
	sessions store.SessionStore,
	chats store.ChatStore,
	registry *predictor.Registry,
	assistant gemini.Chat,
	finders ...geo.FacilityFinder) *Server {
	return &Server{
		sessions:  sessions,
		chats:     chats,
		machine:   intake.NewMachine(sessions, registry),
		registry:  registry,
		finders:   finders,
		assistant: assistant,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		AllowAllOrigins: true,
		MaxAge:          12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/chat", s.chat)
	apiRoute.POST("/hospitals", s.nearbyHospitals)

	diseaseRoute := apiRoute.Group("/:disease")
	{
		diseaseRoute.POST("/start", s.startIntake)
		diseaseRoute.POST("/answer", s.submitAnswer)
		diseaseRoute.POST("/predict_form", s.predictForm)
	}

	r.GET("/healthz", s.healthz)

	// frontend assets
	if static := viper.GetString("server.static"); static != "" {
		r.StaticFile("/", static+"/index.html")
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
		"models":  s.registry.Count(),
	})
}
