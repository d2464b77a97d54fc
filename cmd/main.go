// FilePath: server/telemetry/cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/config"
	"github.com/itsatony/w4b_v3/server/telemetry/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

// @title W4B Telemetry API
// @version 1.0
// @description Ingestion and query API for hive sensor, entrance and population telemetry.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Parse flags
	fs := config.Flags()
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting W4B Telemetry Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		" _      ____ __ ______    __                  __          ",
		"| | /| / / // // __/ /_  / /____ / /__ __ _  (_)__        ",
		"| |/ |/ /_  _// __/ __/ / __/ -_) / -_)  ' \\/ / _ \\    ",
		"|__/|__/ /_/ /____/\\__/  \\__/\\__/_/\\__/_/_/_/_/\\__/  ",
		"..........................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
