package main

import (
	"os"

	"cat-breed-info/internal/adapters/agent"
	"cat-breed-info/internal/app"
	"cat-breed-info/internal/config"

	"github.com/mark3labs/mcp-go/server"
)

// Servidor MCP por stdio: stdout es del protocolo, los logs van a stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := cfg.Logger(os.Stderr)

	svc, err := app.NewBreedService(cfg, log)
	if err != nil {
		log.Error("build breed service", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	s := agent.NewMCPServer(svc, app.Version)
	log.Info("serving mcp over stdio", map[string]any{"cache_policy": string(cfg.CachePolicy)})
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
