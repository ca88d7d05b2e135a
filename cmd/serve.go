package cmd

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cpusched/cpusched/api"
	"github.com/cpusched/cpusched/config"
)

var (
	// CLI flags for the serve command
	configFile string // Server config file path
	port       int    // Listen port override
)

// serveCmd exposes the scheduling engine over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := config.Load(configFile)
		if err != nil {
			logrus.Fatalf("Unable to load server config: %v", err)
		}
		if port != 0 {
			cfg.Port = port
		}

		app := fiber.New()
		api.NewSchedulerHandler(cfg).Register(app)

		logrus.Infof("Listening on :%d (default quantum %d)", cfg.Port, cfg.DefaultQuantum)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logrus.Fatalf("Server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config", "", "Server config file (default: ./config.yaml if present)")
	serveCmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(serveCmd)
}
