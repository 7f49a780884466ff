// Package version 서비스가 응답하는 버전 문자열과 빌드 메타데이터를 제공합니다.
//
// AppVersion은 GET /version 엔드포인트가 그대로 반환하는 고정 문자열입니다.
// 빌드 메타데이터(Info)는 -ldflags로 주입된 값과 실행 파일의 디버그 정보(debug.ReadBuildInfo),
// 실행 환경(Go 버전, OS, 아키텍처)을 합쳐 구성되며 /version/build 엔드포인트와 로그에 사용됩니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

// AppVersion GET /version 요청에 대한 응답 본문입니다.
const AppVersion = "Hey there!! This is Akash"

const (
	unknown = "unknown"
	none    = "none"
	devel   = "(devel)"
)

// 빌드 시점에 -ldflags "-X .../internal/pkg/version.appVersion=..." 형태로 주입됩니다.
// 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = "" // clean 또는 dirty
	buildDate     = ""
	buildNumber   = ""
)

var (
	current atomic.Value

	readBuildInfo = debug.ReadBuildInfo
)

func init() {
	set(enrichBuildInfo(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}))
}

// Info 빌드 메타데이터입니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 메타데이터를 반환합니다. 여러 고루틴에서 동시에 호출해도 안전합니다.
func Get() Info {
	if bi, ok := current.Load().(Info); ok {
		return bi
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
}

func set(bi Info) {
	current.Store(bi)
}

// enrichBuildInfo 비어 있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
//
// ldflags로 주입된 값이 있으면 우선하며, vcs.modified가 true이면 주입 여부와 관계없이 DirtyBuild로 표시합니다.
func enrichBuildInfo(bi Info) Info {
	bi.GoVersion = firstNonEmpty(bi.GoVersion, runtime.Version())
	bi.OS = firstNonEmpty(bi.OS, runtime.GOOS)
	bi.Arch = firstNonEmpty(bi.Arch, runtime.GOARCH)

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if isUnset(bi.Commit) {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if isUnset(bi.BuildDate) {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				bi.DirtyBuild = bi.DirtyBuild || s.Value == "true"
			}
		}

		if bi.Version == "" && info.Main.Version != devel {
			bi.Version = info.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if isUnset(bi.Commit) {
		bi.Commit = unknown
	}

	return bi
}

func isUnset(v string) bool {
	return v == "" || v == unknown || v == none
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

// ShortCommit 커밋 해시 앞 7자리를 반환합니다.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// ToMap 구조화된 로그 필드로 사용할 수 있도록 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.3+dirty (commit: abcdef1, build: 42, ...)" 형태로 요약합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	add := func(key, val string) {
		if val != "" && val != unknown {
			details = append(details, fmt.Sprintf("%s: %s", key, val))
		}
	}
	add("commit", i.ShortCommit())
	add("build", i.BuildNumber)
	add("date", i.BuildDate)
	add("go_version", i.GoVersion)
	add("os", i.OS)
	add("arch", i.Arch)

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
