package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/dtokit/pkg/config"
	"github.com/dmitrymomot/dtokit/pkg/dto"
	"github.com/dmitrymomot/dtokit/pkg/i18n"
	"github.com/dmitrymomot/dtokit/pkg/logger"
)

var (
	envFile  string
	yamlFile string
	lang     string
)

var rootCmd = &cobra.Command{
	Use:   "dtodemo",
	Short: "Validate and log sample entities",
	Long: `dtodemo loads application settings, builds a few validated entities
and logs them, including one localized validation failure.

Settings come from a dotenv file (--env), a YAML file (--yaml) or the
process environment.

Example:
  dtodemo --env .env --lang es
  dtodemo --yaml config.yaml`,
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env", "", "dotenv settings file")
	rootCmd.Flags().StringVar(&yamlFile, "yaml", "", "YAML settings file")
	rootCmd.Flags().StringVar(&lang, "lang", "es", "language for validation messages")
	rootCmd.MarkFlagsMutuallyExclusive("env", "yaml")
}

// Execute runs the command.
func Execute() error {
	return rootCmd.Execute()
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(envFile, yamlFile)
	if err != nil {
		slog.Error("Failed to load config", logger.ValidationErrors(err))
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.AppName),
		logger.WithLevel(cfg.SlogLevel()),
		logger.WithOutput(cmd.OutOrStderr()),
	)
	logger.SetAsDefault(log)
	log.Info("Config loaded", logger.Entity("config", cfg))

	return run(cmd.Context(), log, lang)
}

func loadConfig(envFile, yamlFile string) (dto.AppConfig, error) {
	cfg := dto.DefaultAppConfig()
	var err error
	switch {
	case envFile != "":
		err = config.LoadFile(envFile, &cfg)
	case yamlFile != "":
		err = config.LoadYAML(yamlFile, &cfg)
	default:
		err = config.Load(&cfg)
	}
	return cfg, err
}

func run(ctx context.Context, log *slog.Logger, lang string) error {
	customer, err := dto.NewUser("john_doe", "john@example.com", 25)
	if err != nil {
		return err
	}

	electronics, err := dto.NewCategory(1, "Electronics")
	if err != nil {
		return err
	}
	laptop, err := dto.New(dto.Product{
		ID:         uuid.New(),
		Name:       "Laptop",
		Price:      999.99,
		Quantity:   10,
		Categories: []dto.Category{electronics},
	})
	if err != nil {
		return err
	}
	mouse, err := dto.New(dto.Product{
		ID:         uuid.New(),
		Name:       "Mouse",
		Price:      29.99,
		Quantity:   50,
		Categories: []dto.Category{electronics},
	})
	if err != nil {
		return err
	}

	order, err := dto.New(dto.Order{
		ID:       uuid.New(),
		Customer: customer,
		Items: []dto.OrderItem{
			{Product: laptop, Quantity: 2},
			{Product: mouse, Quantity: 3},
		},
		Status: dto.OrderPending,
	})
	if err != nil {
		return err
	}
	log.Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.Float64("total", order.Total()),
		slog.Int("item_count", order.ItemCount()),
	)

	page, err := dto.NewPage([]dto.User{customer}, 1, 1, 10)
	if err != nil {
		return err
	}
	log.Info("Users page",
		slog.Int("total_pages", page.TotalPages()),
		slog.Bool("has_next", page.HasNext()),
	)

	newYork, err := dto.NewGeoLocation("New York", 40.7128, -74.0060)
	if err != nil {
		return err
	}
	losAngeles, err := dto.NewGeoLocation("Los Angeles", 34.0522, -118.2437)
	if err != nil {
		return err
	}
	log.Info("Distance", slog.Float64("km", newYork.DistanceTo(losAngeles)))

	form, err := dto.New(dto.SignUp{
		Username:        "new_user",
		Email:           "new@example.com",
		Password:        "SecurePass123!",
		ConfirmPassword: "SecurePass123!",
	})
	if err != nil {
		return err
	}
	if _, err := form.HashPassword(0); err != nil {
		return err
	}
	log.Info("Signed up", logger.Entity("sign_up", form))

	tr, err := i18n.NewValidationTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		return err
	}
	_, err = dto.Parse[dto.GeoLocation]([]byte(`{"latitude": 91, "longitude": 0, "name": "Nowhere"}`))
	log.Warn("Rejected location",
		slog.String("lang", lang),
		logger.ValidationErrors(tr.LocalizeError(lang, err)),
	)
	return nil
}
