// Command migrate applies the embedded billing schema migrations.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/config"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/migration"
	"github.com/doorscomputers/megatower-sub002/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var errUsage = errors.New("invalid usage")

// command runs against an open migrator; offline commands receive nil.
type command struct {
	offline bool
	run     func(m *migration.Migrator, args []string, log *zap.Logger) error
}

var (
	createDir string
	commands  = map[string]command{
		"up":      {run: func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Up() }},
		"down":    {run: func(m *migration.Migrator, _ []string, _ *zap.Logger) error { return m.Down() }},
		"step":    {run: runStep},
		"version": {run: runVersion},
		"status":  {run: runStatus},
		"force":   {run: runForce},
		"create":  {offline: true, run: runCreate},
		"list":    {offline: true, run: runList},
	}
)

func main() {
	var logLevel string
	flag.StringVar(&createDir, "dir", "migrations", "Directory new migrations are written to by 'create'")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := execute(cmd, args, log); err != nil {
		log.Error("Migration command failed", zap.String("command", args[0]), zap.Error(err))
		_ = log.Sync()
		if errors.Is(err, errUsage) {
			printUsage()
		}
		os.Exit(1)
	}
	_ = log.Sync()
}

func execute(cmd command, args []string, log *zap.Logger) error {
	log.Debug("Migration CLI started", zap.String("command", args[0]))
	if cmd.offline {
		return cmd.run(nil, args[1:], log)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database %s: %w", cfg.Database.DBName, err)
	}

	m, err := migration.New(db, migrations.FS, log)
	if err != nil {
		return err
	}
	defer m.Close()
	return cmd.run(m, args[1:], log)
}

func intArg(args []string, what string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%w: %s required", errUsage, what)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errUsage, what, args[0])
	}
	return n, nil
}

func runStep(m *migration.Migrator, args []string, _ *zap.Logger) error {
	n, err := intArg(args, "step count")
	if err != nil {
		return err
	}
	return m.Steps(n)
}

func runForce(m *migration.Migrator, args []string, _ *zap.Logger) error {
	v, err := intArg(args, "version")
	if err != nil {
		return err
	}
	return m.Force(v)
}

func runVersion(m *migration.Migrator, _ []string, log *zap.Logger) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if version == 0 {
		log.Info("No migrations applied")
		return nil
	}
	log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func runStatus(m *migration.Migrator, _ []string, log *zap.Logger) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	names, err := migration.ListMigrations(migrations.FS)
	if err != nil {
		return err
	}
	plan, err := migration.Plan(names, version)
	if err != nil {
		return err
	}
	for _, s := range plan {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Printf("  %-8s %s\n", state, s.Name)
	}
	log.Info("Migration status",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
		zap.Int("pending", migration.Pending(plan)),
	)
	return nil
}

func runCreate(_ *migration.Migrator, args []string, log *zap.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: migration name required", errUsage)
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}
	mf, err := migration.CreateMigration(createDir, args[0], description, time.Now())
	if err != nil {
		return err
	}
	log.Info("Migration created",
		zap.String("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	return nil
}

func runList(_ *migration.Migrator, _ []string, log *zap.Logger) error {
	names, err := migration.ListMigrations(migrations.FS)
	if err != nil {
		return err
	}
	log.Info("Embedded migrations", zap.Int("count", len(names)))
	for _, name := range names {
		fmt.Println("  -", name)
	}
	return nil
}

func printUsage() {
	fmt.Println(`Megatower billing database migrations

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (positive=up, negative=down)
  version               Show current migration version
  status                List embedded migrations as applied or pending
  force <version>       Force set migration version (clears a dirty state)
  create <name> [desc]  Create a new migration file pair
  list                  List the migrations built into this binary

Flags:
  -dir string           Directory for 'create' (default: migrations)
  -log-level string     Log level: debug, info, warn, error (default: info)

Database settings come from config.toml or MEGATOWER_DATABASE_* variables.`)
}
