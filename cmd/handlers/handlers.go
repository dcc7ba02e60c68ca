package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/ksaito/order-payment-gateway/internal/metrics"
	"github.com/ksaito/order-payment-gateway/internal/models"
	"github.com/ksaito/order-payment-gateway/internal/services/checkout"
	"github.com/ksaito/order-payment-gateway/internal/services/processor"
)

type PaymentHandler struct {
	processor  processor.Client
	classifier checkout.Classifier
	log        zerolog.Logger
	metrics    *metrics.ServerMetrics
}

func NewPaymentHandler(client processor.Client, classifier checkout.Classifier, log zerolog.Logger, m *metrics.ServerMetrics) *PaymentHandler {
	return &PaymentHandler{
		processor:  client,
		classifier: classifier,
		log:        log,
		metrics:    m,
	}
}

// Register mounts the gateway routes on the given app.
func (h *PaymentHandler) Register(app *fiber.App) {
	app.Post("/v1/order/payment", h.HandleOrderPayment)
	app.Get("/health", h.HandleHealth)
}

func (h *PaymentHandler) HandleOrderPayment(c *fiber.Ctx) error {
	logger := h.log.With().Str("request_id", requestID(c)).Logger()

	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		h.metrics.Payments.WithLabelValues("parse", "error").Inc()
		return fmt.Errorf("invalid payment request body: %w", err)
	}

	total := checkout.TotalAmount(req.Items)
	operation := operationFor(&req)
	logger.Info().
		Str("operation", operation).
		Int64("amount", total).
		Str("currency", req.Currency).
		Int("items", len(req.Items)).
		Msg("processing order payment")

	intent, err := h.executeIntent(c.UserContext(), &req, total)
	if err != nil {
		h.metrics.Payments.WithLabelValues(operation, "error").Inc()
		return err
	}

	res := h.classifier.Classify(intent)
	logger.Info().
		Str("operation", operation).
		Str("intent_id", intent.ID).
		Str("intent_status", intent.Status).
		Bool("requires_action", res.RequiresAction).
		Msg("order payment processed")
	h.metrics.Payments.WithLabelValues(operation, "ok").Inc()
	return c.JSON(res)
}

func (h *PaymentHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// executeIntent performs the single processor round-trip: create a fresh
// intent from a payment method, or confirm one the client already holds.
func (h *PaymentHandler) executeIntent(ctx context.Context, req *models.PaymentRequest, total int64) (*processor.Intent, error) {
	start := time.Now()

	var intent *processor.Intent
	var err error
	switch {
	case req.PaymentMethodID != "":
		intent, err = h.processor.CreateIntent(ctx, &processor.IntentParams{
			Amount:          total,
			Currency:        req.Currency,
			PaymentMethodID: req.PaymentMethodID,
			UseStripeSDK:    req.UseStripeSDK,
		})
	case req.PaymentIntentID != "":
		intent, err = h.processor.ConfirmIntent(ctx, req.PaymentIntentID)
	default:
		return nil, processor.ErrMissingPaymentReference
	}

	h.metrics.ProcessorLatency.WithLabelValues(operationFor(req)).Observe(float64(time.Since(start).Milliseconds()))
	return intent, err
}

// ErrorHandler converts any handler failure into the uniform error payload.
// Errors raised by fiber itself keep their status code; everything else is
// surfaced as a 500.
func (h *PaymentHandler) ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	h.log.Error().
		Str("request_id", requestID(c)).
		Int("status", code).
		Err(err).
		Msg("request failed")

	return c.Status(code).JSON(models.ErrorResponse{
		Error: models.ResponseError{Messages: []string{err.Error()}},
	})
}

func operationFor(req *models.PaymentRequest) string {
	switch {
	case req.PaymentMethodID != "":
		return "create"
	case req.PaymentIntentID != "":
		return "confirm"
	default:
		return "unknown"
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
