package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kasir/pkg/ocr"
)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	initLogger()
	initAuth()
	recognizer = ocr.NewTesseractRecognizer()

	r := gin.Default()
	setupRoutes(r)

	// Optional camera stand-in: frames dropped into SPOOL_DIR are scanned
	// into a dedicated session whose token is logged for pickup.
	if dir := os.Getenv("SPOOL_DIR"); dir != "" {
		sess := sessions.Create()
		if token, err := issueSessionToken(sess.ID); err == nil {
			logrus.WithField("token", token).Info("spool session created")
		}
		go runSpool(dir, sess, recognizer)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	r.Run(":" + port)
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
