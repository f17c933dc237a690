package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"retail-ops-core/internal/handler/middleware"
	"retail-ops-core/internal/pkg/config"
	"retail-ops-core/migrations"
)

const usage = `usage: migrator [up|down|version]

  up       全ての未適用マイグレーションを適用します（デフォルト）
  down     直近のマイグレーションを1件ロールバックします
  version  現在のスキーマバージョンを表示します
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	logger := middleware.NewLogger(config.LogConfig{
		Level:      "info",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02 15:04:05.000",
	}).GetSlogLogger()

	if err := run(command, logger); err != nil {
		logger.Error("マイグレーションに失敗しました", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(command string, logger *slog.Logger) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	runner, err := migrations.NewRunner(dbCfg.BuildDSN(), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := runner.Close(); err != nil {
			logger.Warn("マイグレーションランナーのクローズに失敗しました", "error", err)
		}
	}()

	switch command {
	case "up":
		return runner.Up()
	case "down":
		return runner.Down()
	case "version":
		v, dirty, err := runner.Version()
		if err != nil {
			return err
		}
		logger.Info("現在のスキーマバージョン", "version", v, "dirty", dirty)
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
