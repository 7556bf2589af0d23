package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/friday-calendar/internal/config"
)

var (
	configPath string
	monthFlag  string
	logger     *zap.Logger
	// logToFile is set when the logger writes to log.file instead of stderr
	logToFile bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "friday-calendar",
		Short: "Monthly work-hours calendar with alternating working Fridays",
		Long: "Log daily working hours on a month grid. Every other Friday starting with the " +
			"first Friday of the month is a working day; the monthly target is 8h per working day.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err != nil {
				initLogger(zapcore.InfoLevel)
				return
			}
			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLogLevel())
				logToFile = true
				return
			}
			initLogger(cfg.Log.GetLogLevel())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ./config.yaml, ~/.friday-calendar)")
	rootCmd.PersistentFlags().StringVarP(&monthFlag, "month", "m", "", "Month to open, YYYY-MM (default: calendar.month or the current month)")

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(level zapcore.Level) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(level)

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
