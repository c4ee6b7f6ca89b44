package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"pizzapos/cmd"
	httpadapter "pizzapos/internal/adapters/in/http"
	"pizzapos/internal/jobs"
)

func main() {
	configs := getConfigs()

	root, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		root.CreateAdvanceKitchenCommandHandler(),
		configs.KitchenTickSeconds,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, using environment and defaults")
	}

	return cmd.Config{
		HTTPPort:                 envString("HTTP_PORT", "8080"),
		KitchenTickSeconds:       envInt("KITCHEN_TICK_SECONDS", 3),
		PaymentDelayMs:           envInt("PAYMENT_DELAY_MS", 1500),
		DecrementStockOnCheckout: envBool("DECREMENT_STOCK_ON_CHECKOUT", true),
		TaxRate:                  envFloat("TAX_RATE", 0.05),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		httpadapter.Commands{
			AddToCart:           root.CreateAddToCartCommandHandler(),
			ApplyTemplate:       root.CreateApplyTemplateCommandHandler(),
			UpdateCartItem:      root.CreateUpdateCartItemCommandHandler(),
			UpdateQuantity:      root.CreateUpdateQuantityCommandHandler(),
			RemoveCartItem:      root.CreateRemoveCartItemCommandHandler(),
			DuplicateItem:       root.CreateDuplicateItemCommandHandler(),
			ClearCart:           root.CreateClearCartCommandHandler(),
			UndoLastAction:      root.CreateUndoLastActionCommandHandler(),
			AddTab:              root.CreateAddTabCommandHandler(),
			CloseTab:            root.CreateCloseTabCommandHandler(),
			SetActiveTab:        root.CreateSetActiveTabCommandHandler(),
			HoldOrder:           root.CreateHoldOrderCommandHandler(),
			ResumeOrder:         root.CreateResumeOrderCommandHandler(),
			StartCustomizing:    root.CreateStartCustomizingCommandHandler(),
			StartEditing:        root.CreateStartEditingCommandHandler(),
			CancelCustomizing:   root.CreateCancelCustomizingCommandHandler(),
			UpdateStock:         root.CreateUpdateStockCommandHandler(),
			UpdateToppingStatus: root.CreateUpdateToppingStatusCommandHandler(),
			ProcessTransaction:  root.CreateProcessTransactionCommandHandler(),
			UpdateSettings:      root.CreateUpdateTerminalSettingsCommandHandler(),
		},
		httpadapter.Queries{
			GetProducts:      root.CreateGetProductsQueryHandler(),
			GetToppings:      root.CreateGetToppingsQueryHandler(),
			GetCart:          root.CreateGetCartQueryHandler(),
			GetTabs:          root.CreateGetTabsQueryHandler(),
			GetHeldOrders:    root.CreateGetHeldOrdersQueryHandler(),
			GetSessions:      root.CreateGetCustomizingSessionsQueryHandler(),
			GetLiveOrders:    root.CreateGetLiveOrdersQueryHandler(),
			GetOrdersArchive: root.CreateGetOrdersArchiveQueryHandler(),
			GetKitchenStatus: root.CreateGetKitchenStatusQueryHandler(),
			GetSettings:      root.CreateGetSettingsQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
