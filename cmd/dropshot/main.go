package main

import (
	"os"
	"path/filepath"
	"strings"

	"dropshot/internal/game"
)

func main() {
	// Change working directory to the executable location for deployed
	// builds, so the assets directory resolves. Skip this for "go run",
	// which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	g := game.New()
	g.Run()
}
