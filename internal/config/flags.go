package config

import (
	"flag"
	"strings"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d local database DSN (SQLite file path)
//	-t bearer token for storage requests
//	-collections comma-separated list of collections to sync
//	-limit max records per page
//	-conflict-retries pass restarts allowed after a server conflict
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "5m"); 0 = single shot
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var token string
	var collections string
	var batchLimit int
	var conflictRetries int
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Sync server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.StringVar(&collections, "collections", "", "Comma-separated collections to sync")
	flag.IntVar(&batchLimit, "limit", 0, "Max records per page")
	flag.IntVar(&conflictRetries, "conflict-retries", 0, "Pass restarts allowed after a conflict")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			ServerAddress:  serverAddress,
			RequestTimeout: requestTimeout,
			Token:          token,
		},
		Sync: Sync{
			Collections:     splitCollections(collections),
			BatchLimit:      batchLimit,
			ConflictRetries: conflictRetries,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitCollections turns a comma-separated flag value into a clean slice,
// dropping empty segments so "bookmarks,,history," parses the way a user
// meant it.
func splitCollections(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
