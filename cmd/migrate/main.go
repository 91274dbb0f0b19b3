package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"renovo/internal/migrator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	var (
		down    = flag.Bool("down", false, "roll back the latest migration")
		force   = flag.Int("force", -1, "force the schema version (clears the dirty flag)")
		status  = flag.Bool("status", false, "print the current schema version")
		dsnFlag = flag.String("dsn", "", "postgres connection string (defaults to DB_ADDR)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Error loading .env file:", err)
		os.Exit(1)
	}

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	dsn := *dsnFlag
	if dsn == "" {
		dsn = os.Getenv("DB_ADDR")
	}
	if dsn == "" {
		logger.Fatal("DB_ADDR is not set")
	}

	opts := migrator.Options{Mode: migrator.Up}
	switch {
	case *force >= 0:
		opts = migrator.Options{Mode: migrator.ForceTo, Version: *force}
	case *down:
		opts.Mode = migrator.DownOne
	case *status:
		opts.Mode = migrator.Status
	}

	start := time.Now()
	res, err := migrator.Run(dsn, opts)
	if err != nil {
		logger.Fatalw("migration failed", "error", err)
	}

	logger.Infow("migrations done",
		"version", res.Version,
		"dirty", res.Dirty,
		"changed", res.Changed,
		"took", time.Since(start),
	)
}
