// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 컨텍스트 취소로 종료되는 장기 실행 서비스입니다.
//
// Start는 즉시 반환해야 하며, 서비스가 완전히 종료되면 serviceStopWG.Done()을 한 번 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
