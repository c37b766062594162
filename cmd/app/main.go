package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"shipnotice/cmd"
	httpin "shipnotice/internal/adapters/in/http"
	"shipnotice/internal/adapters/in/orderfile"
	"shipnotice/internal/core/application/usecases/commands"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs, os.Stdout)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	if configs.OrderFile != "" {
		runOrderFile(&app, configs)
		return
	}

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOr("HTTP_PORT", "8080"),
		CompanyPrefix:      envOr("SSCC_COMPANY_PREFIX", "0614141"),
		ExtensionDigit:     envOr("SSCC_EXTENSION_DIGIT", "0")[0],
		SerialStart:        envUint("SSCC_SERIAL_START", 1),
		MaxUnitsPerCarton:  envInt("MAX_UNITS_PER_CARTON", 50),
		MaxWeightPerCarton: envFloat("MAX_WEIGHT_PER_CARTON", 0),
		SegregateBySKU:     envBool("SEGREGATE_BY_SKU", false),
		SenderID:           envOr("EDI_SENDER_ID", "SENDER"),
		ReceiverID:         envOr("EDI_RECEIVER_ID", "RECEIVER"),
		OrderFile:          os.Getenv("ORDER_FILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

func envUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Fatalf("%s must be a non-negative integer, got %q", key, v)
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, v)
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("%s must be a boolean, got %q", key, v)
	}
	return b
}

// runOrderFile executes the one-shot pipeline: load the order, generate the
// ship notice, print the document, render the labels, exit.
func runOrderFile(app *cmd.CompositionRoot, configs cmd.Config) {
	ctx := context.Background()

	ord, err := orderfile.Load(configs.OrderFile)
	if err != nil {
		log.Fatalf("load order: %v", err)
	}

	shipNoticeCmd, err := commands.NewGenerateShipNoticeCommand(ord, configs.SenderID, configs.ReceiverID, ord.ShipDate())
	if err != nil {
		log.Fatalf("build ship notice command: %v", err)
	}

	handler := app.CreateGenerateShipNoticeCommandHandler()
	result, err := handler.Handle(ctx, shipNoticeCmd)
	if err != nil {
		log.Fatalf("generate ship notice: %v", err)
	}

	fmt.Println(result.Document)

	labelsCmd, err := commands.NewGenerateLabelsCommand(result.Shipment)
	if err != nil {
		log.Fatalf("build labels command: %v", err)
	}
	labelsHandler := app.CreateGenerateLabelsCommandHandler()
	batch, err := labelsHandler.Handle(ctx, labelsCmd)
	if err != nil {
		log.Fatalf("generate labels: %v", err)
	}

	log.Infof("shipment %s: %d segments, %d labels, control number %s",
		result.Shipment.ID(), result.SegmentCount, len(batch.Labels), result.ControlNumber)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	validator, err := httpin.NewRequestValidator()
	if err != nil {
		log.Fatalf("request validator: %v", err)
	}

	server := httpin.NewServer(
		app.CreateGenerateShipNoticeCommandHandler(),
		app.CreatePeekContainerCodeQueryHandler(),
		app.CreateValidateContainerCodeQueryHandler(),
		configs.SenderID,
		configs.ReceiverID,
	)
	server.RegisterRoutes(e, validator)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
