package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akashkickdrum/version-service/internal/config"
	apperrors "github.com/akashkickdrum/version-service/internal/pkg/errors"
	"github.com/akashkickdrum/version-service/internal/pkg/version"
	"github.com/akashkickdrum/version-service/internal/service"
	"github.com/akashkickdrum/version-service/internal/service/api"
	applog "github.com/akashkickdrum/version-service/pkg/log"
)

// @title Version Service API
// @version 1.0.0
// @description 애플리케이션 버전 문자열과 빌드 정보를 제공하는 REST API입니다.
// @description
// @description ## 엔드포인트
// @description - GET /version: 고정된 버전 문자열(평문)
// @description - GET /version/build: 빌드 메타데이터(JSON)
// @description - GET /health: 헬스체크
// @description - GET /metrics: Prometheus 메트릭

// @BasePath /

const componentMain = "main"

const banner = `
__     __            _                ____                  _
\ \   / /__ _ __ ___(_) ___  _ __    / ___|  ___ _ ____   _(_) ___ ___
 \ \ / / _ \ '__/ __| |/ _ \| '_ \   \___ \ / _ \ '__\ \ / / |/ __/ _ \
  \ V /  __/ |  \__ \ | (_) | | | |   ___) |  __/ |   \ V /| | (_|  __/
   \_/ \___|_|  |___/_|\___/|_| |_|  |____/ \___|_|    \_/ |_|\___\___|
                                                                   %s
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		if apperrors.Is(err, apperrors.NotFound) {
			fmt.Fprintln(os.Stderr, "[HINT] TLS 인증서(tls_cert_file)와 키(tls_key_file) 경로를 확인하세요")
		}
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig.Debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, appConfig, buildInfo); err != nil {
		applog.WithComponentAndFields(componentMain, applog.Fields{
			"error": err,
			"cause": apperrors.RootCause(err),
		}).Error("서비스 실행 실패로 프로그램을 종료합니다")

		appLogCloser.Close()
		os.Exit(1)
	}
}

func newLogOptions(debug bool) applog.Options {
	if debug {
		return applog.NewDevelopmentOptions(config.AppName)
	}
	return applog.NewProductionOptions(config.AppName)
}

// run 서비스를 시작하고 ctx가 취소될 때까지 대기한 뒤, 모든 서비스가 종료되면 반환합니다.
// API 서버가 예기치 않게 종료되면(포트 사용 중, 인증서 오류 등) 나머지 서비스를 정리하고 그 원인을 반환합니다.
func run(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) error {
	fields := applog.Fields{
		"env": map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}
	for k, v := range buildInfo.ToMap() {
		fields[k] = v
	}
	applog.WithComponentAndFields(componentMain, fields).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	apiService := api.NewService(appConfig, buildInfo)

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			cancel()
			serviceStopWG.Wait()
			return err
		}
	}

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(componentMain).Info("종료 신호 수신, 서비스를 중지합니다")

	case err := <-apiService.Err():
		// 유일한 서비스인 API 서버가 멈추면 프로세스를 유지할 이유가 없습니다.
		cancel()
		serviceStopWG.Wait()
		return err
	}

	serviceStopWG.Wait()

	return nil
}
