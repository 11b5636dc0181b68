// Command hyperliquid-mcp-http starts the MCP HTTP server.
package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"hyperliquid-mcp/internal/hyperliquid"
	"hyperliquid-mcp/internal/server"
)

func main() {
	cfg := server.Config{
		Port:        getEnv("PORT", "7860"),
		UpstreamURL: getEnv("HYPERLIQUID_API_URL", hyperliquid.DefaultBaseURL),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	srv := server.New(cfg)
	log.Printf("Starting Hyperliquid MCP HTTP server on :%s (upstream %s)\n", cfg.Port, cfg.UpstreamURL)
	certFile := os.Getenv("TLS_CERT_FILE")
	keyFile := os.Getenv("TLS_KEY_FILE")
	if certFile != "" && keyFile != "" {
		log.Println("TLS enabled: using provided certificate and key")
		if err := http.ListenAndServeTLS(":"+cfg.Port, certFile, keyFile, srv.Router()); err != nil {
			log.Fatalf("server error: %v", err)
		}
		return
	}
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
