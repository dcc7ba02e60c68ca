package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	json "github.com/json-iterator/go"

	"github.com/ksaito/order-payment-gateway/cmd/handlers"
	"github.com/ksaito/order-payment-gateway/internal/env"
	"github.com/ksaito/order-payment-gateway/internal/logging"
	"github.com/ksaito/order-payment-gateway/internal/metrics"
	"github.com/ksaito/order-payment-gateway/internal/services/checkout"
	"github.com/ksaito/order-payment-gateway/internal/services/processor"
)

func main() {
	env.Load()

	logger := logging.New("payment-gateway")
	srvMetrics := metrics.NewServerMetrics("payment_gateway")

	stripeProcessor := processor.NewStripeProcessor(env.Env.StripeSecretKey)
	classifier := checkout.Classifier{LegacyCascade: env.Env.LegacyCascade}
	handler := handlers.NewPaymentHandler(stripeProcessor, classifier, logger, srvMetrics)

	app := fiber.New(fiber.Config{
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: handler.ErrorHandler,
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(recover.New())

	handler.Register(app)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	logger.Info().Str("port", env.Env.BackendPort).Msg("order payment gateway listening")
	log.Fatal(app.Listen(":" + env.Env.BackendPort))
}
