package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/yourusername/storefront/config"
	"github.com/yourusername/storefront/internal/delivery/cli"
	"github.com/yourusername/storefront/internal/domain/repository"
	"github.com/yourusername/storefront/internal/infrastructure/parser"
	"github.com/yourusername/storefront/internal/infrastructure/security"
	"github.com/yourusername/storefront/internal/infrastructure/storage"
	"github.com/yourusername/storefront/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Debug("store opened", zap.String("driver", cfg.StoreDriver), zap.String("path", cfg.StorePath))

	verifier, err := newVerifier(cfg)
	if err != nil {
		return err
	}

	productRepo := storage.NewProductRepository(store, logger)
	gate := usecase.NewCredentialGate(
		storage.NewAttemptRepository(store),
		verifier,
		usecase.GatePolicy{MaxAttempts: cfg.MaxLoginAttempts, LockoutDuration: cfg.LockoutDuration},
		logger,
	)
	adminUseCase := usecase.NewAdminUseCase(
		gate,
		storage.NewMemoryAdminRepository(),
		productRepo,
		parser.NewExcelParser(logger),
		logger,
	)
	handler := cli.NewHandler(usecase.NewProductUseCase(productRepo), adminUseCase, gate, logger)

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Local storefront: catalog, cart checkout and catalog administration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(handler.Commands()...)
	return root.Execute()
}

// newVerifier ADMIN_PASSWORD_HASH berilgan bo'lsa bcrypt, aks holda qat'iy parol
func newVerifier(cfg *config.Config) (repository.CredentialVerifier, error) {
	if cfg.AdminPasswordHash != "" {
		return security.NewBcryptVerifier(cfg.AdminPasswordHash)
	}
	return security.NewStaticVerifier(cfg.AdminPassword), nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.LogMode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	// CLI chiqishini loglar bilan aralashtirmaslik uchun
	zapConfig.OutputPaths = []string{"stderr"}

	if cfg.LogFile == "" {
		return zapConfig.Build()
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    16,
		MaxBackups: 3,
		MaxAge:     7,
	}
	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(rotating),
			zapConfig.Level,
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(os.Stderr),
			zapConfig.Level,
		),
	)
	return zap.New(core, zap.AddCaller()), nil
}
