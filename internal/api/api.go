package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/rifmis/internal/api/controller"
	"github.com/ougirez/rifmis/internal/pkg/logger"
	"github.com/ougirez/rifmis/internal/pkg/store"
	"github.com/ougirez/rifmis/internal/service/auth"
	"github.com/ougirez/rifmis/internal/service/participants"
	"github.com/ougirez/rifmis/internal/service/tracking"
	"github.com/ougirez/rifmis/internal/service/training"
)

type Options struct {
	CORSOrigins []string
	BodyLimit   string
}

type APIService struct {
	router  *echo.Echo
	auth    *auth.Service
	metrics *metrics

	trackingService     *tracking.Service
	trainingService     *training.Service
	participantsService *participants.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store, authService *auth.Service, opts Options) (*APIService, error) {
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"http://localhost:3000"}
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = "2M"
	}

	svc := &APIService{
		router:  echo.New(),
		auth:    authService,
		metrics: newMetrics(),
	}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.ERROR)
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Pre(middleware.RemoveTrailingSlash())
	svc.router.Use(requestIDMiddleware())
	svc.router.Use(requestLoggerMiddleware())
	svc.router.Use(middleware.Recover())
	svc.router.Use(svc.metrics.middleware)
	svc.router.Use(middleware.BodyLimit(opts.BodyLimit))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	svc.trackingService = tracking.NewTrackingService(store)
	svc.trainingService = training.NewTrainingService(store)
	svc.participantsService = participants.NewParticipantsService(store)

	cntrl := controller.NewController(svc.trackingService, svc.trainingService, svc.participantsService, store)

	svc.router.GET("/healthz", cntrl.Health)
	svc.router.GET("/metrics", svc.metrics.handler())

	api := svc.router.Group("/api")

	trackingSheet := api.Group("/tracking-sheet")
	trackingSheet.GET("", cntrl.GetTrackingSheet)
	trackingSheet.GET("/activity-progress-summary", cntrl.GetActivityProgressSummary)
	trackingSheet.GET("/output-weightage", cntrl.GetOutputWeightage)

	trainingGroup := api.Group("/training")
	trainingGroup.GET("", cntrl.GetTrainingEvents)
	trainingGroup.GET("/dashboard", cntrl.GetTrainingDashboard)
	trainingGroup.POST("/add", cntrl.AddTrainingEvent, svc.RequireCaller)
	trainingGroup.PUT("/update", cntrl.UpdateTrainingEvent, svc.RequireCaller)
	trainingGroup.DELETE("/delete", cntrl.DeleteTrainingEvent, svc.RequireCaller)

	participantsGroup := trainingGroup.Group("/participants")
	participantsGroup.GET("", cntrl.GetParticipants)
	participantsGroup.GET("/export", cntrl.ExportParticipants)
	participantsGroup.POST("/add", cntrl.AddParticipant, svc.RequireCaller)
	participantsGroup.PUT("/update", cntrl.UpdateParticipant, svc.RequireCaller)
	participantsGroup.DELETE("/delete", cntrl.DeleteParticipant, svc.RequireCaller)

	return svc, nil
}
