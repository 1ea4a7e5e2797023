package main

import (
	"fmt"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
)

const version = "0.1.0"

// minGoVersion is the oldest Go release the demonstrator is validated
// on. Older runtimes still run; they just have not been exercised.
const minGoVersion = "v1.24"

func printVersion() {
	fmt.Printf("xorrace version %s (go runtime %s)\n", version, runtime.Version())
}

// warnOldGoVersion logs a warning when the running toolchain predates
// minGoVersion. Development builds ("devel ...") are left alone.
func warnOldGoVersion() {
	v := "v" + strings.TrimPrefix(runtime.Version(), "go")
	if !semver.IsValid(v) {
		return
	}
	if semver.Compare(v, minGoVersion) < 0 {
		log.Warnf("running on %s, validated on %s and newer", runtime.Version(), minGoVersion)
	}
}
