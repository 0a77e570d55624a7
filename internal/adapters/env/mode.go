package env

import (
	"os"

	"github.com/3-lines-studio/techpage/internal/core"
)

const (
	DevVar  = "TECHPAGE_DEV"
	AddrVar = "TECHPAGE_ADDR"

	DefaultAddr = ":8080"
)

func DetectMode() core.Mode {
	if os.Getenv(DevVar) == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}

func DetectAddr() string {
	if addr := os.Getenv(AddrVar); addr != "" {
		return addr
	}
	return DefaultAddr
}
