// Package strutil 로그 기록 등에 사용되는 문자열 유틸리티 함수를 제공합니다.
package strutil

const maskPlaceholder = "***"

// Mask 토큰, 키 등 민감한 값을 로그에 안전하게 남길 수 있도록 일부만 남기고 가립니다.
//
//	""               -> ""
//	"abc"            -> "***"
//	"secret123"      -> "secr***"
//	"abcdefghijklmn" -> "abcd***klmn"
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return maskPlaceholder
	case len(s) <= 12:
		return s[:4] + maskPlaceholder
	default:
		return s[:4] + maskPlaceholder + s[len(s)-4:]
	}
}
