// Package config loads runtime configuration for the tutorias client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file given with -c or -config; ".yaml"/".yml" files
//     are read as YAML, anything else as JSON.
//  3. A ".env" file in the working directory (if present) and the process
//     environment, variables prefixed with TUTORIAS_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-t int      request timeout (seconds)
//
// Environment
//
//	TUTORIAS_API_URL          base URL of the backend API
//	TUTORIAS_REQUEST_TIMEOUT  e.g. "30s"
//	TUTORIAS_STORAGE          sqlite | memory | redis
//	TUTORIAS_DB_PATH          SQLite file for the session store
//	TUTORIAS_REDIS_ADDR       host:port of Redis
//	TUTORIAS_REDIS_PASSWORD
//	TUTORIAS_REDIS_DB
//	TUTORIAS_REDIS_KEY        hash holding the session
//	TUTORIAS_LOG_LEVEL        debug | info | warn | error
//	TUTORIAS_LOG_BACKEND      slog | zap
//	TUTORIAS_DOWNLOAD_DIR     sub-directory for downloaded documents
//
// File schema (JSON shown, YAML uses the same keys):
//
//	{
//	  "api_url": "http://localhost:8000",
//	  "request_timeout": "30s",
//	  "storage": {"driver": "sqlite", "path": "session.db"},
//	  "log": {"level": "info", "backend": "slog"}
//	}
package config
