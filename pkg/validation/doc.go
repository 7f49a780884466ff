/*
Package validation 설정 파일 등 외부 입력값의 형식을 검증하는 함수를 제공합니다.

  - CORS Origin 검증 (Scheme://Host[:Port] 또는 와일드카드)
  - 포트 번호 및 호스트명(RFC 1123) 검증

모든 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환합니다.
*/
package validation
