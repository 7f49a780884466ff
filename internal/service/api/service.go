package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/akashkickdrum/version-service/docs"
	"github.com/akashkickdrum/version-service/internal/config"
	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service/api/constants"
	"github.com/akashkickdrum/version-service/internal/service/api/handler/system"
	applog "github.com/akashkickdrum/version-service/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service 버전 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start()로 시작하면 별도의 고루틴에서 HTTP(S) 서버를 실행하고,
// 전달받은 context가 취소되면 shutdown_timeout 이내에 Graceful Shutdown을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	// exitErr 서버가 종료 신호 없이 멈춘 경우(포트 바인딩 실패 등) 원인을 한 번 전달합니다.
	exitErr chan error

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다. appConfig가 nil이면 패닉이 발생합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		exitErr: make(chan error, 1),
	}
}

// Err HTTP 서버가 예기치 않게 종료되었을 때 원인 에러를 받는 채널을 반환합니다.
// Graceful Shutdown으로 종료된 경우에는 아무 값도 전달되지 않습니다.
func (s *Service) Err() <-chan error {
	return s.exitErr
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 경고만 남기고 serviceStopWG.Done()을 호출한 뒤 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 메트릭 Registry, 핸들러, 미들웨어 체인, 라우트를 구성한 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	reg := newRegistry()

	systemHandler := system.New(s.buildInfo)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         s.appConfig.HTTPServer.TLSServer,
		AllowOrigins:       s.appConfig.CORS.AllowOrigins,
		RequestTimeout:     s.appConfig.HTTPServer.RequestTimeout,
		RateLimitPerSecond: s.appConfig.RateLimit.RequestsPerSecond,
		RateLimitBurst:     s.appConfig.RateLimit.Burst,
		Registry:           reg,
		BuildInfo:          s.buildInfo,
	})

	RegisterRoutes(e, systemHandler, reg)

	return e
}

// newRegistry Go 런타임과 프로세스 수집기가 등록된 서버 전용 Registry를 생성합니다.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTPServer.ListenPort
	address := fmt.Sprintf(":%d", port)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
		"tls":  s.appConfig.HTTPServer.TLSServer,
	}).Info(constants.LogMsgHTTPServerStarting)

	var err error
	if s.appConfig.HTTPServer.TLSServer {
		err = e.StartTLS(address, s.appConfig.HTTPServer.TLSCertFile, s.appConfig.HTTPServer.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError http.ErrServerClosed는 정상 종료로 보고 Info로 기록합니다.
// 그 외 에러는 Error로 기록하고 Err() 채널로 전달합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	port := s.appConfig.HTTPServer.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  port,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)

	select {
	case s.exitErr <- apperrors.Wrapf(err, apperrors.Unavailable, "http 서버가 예기치 않게 종료되었습니다 (port=%d)", port):
	default:
	}
}

// waitForShutdown 종료 신호 또는 서버의 예기치 않은 종료를 기다린 뒤 정리 작업을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 이미 종료되었으므로 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) shutdownTimeout() time.Duration {
	if t := s.appConfig.HTTPServer.ShutdownTimeout; t > 0 {
		return t
	}
	return constants.DefaultShutdownTimeout
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
