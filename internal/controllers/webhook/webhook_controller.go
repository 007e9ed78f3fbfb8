package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openchatops/whatsapp-bridge/internal/services/convlog"
	"github.com/openchatops/whatsapp-bridge/internal/services/takeover"
)

const signaturePrefix = "sha256="

// TakeoverResolver decides whether a sender's conversation is handled by the
// bot or by a human agent.
type TakeoverResolver interface {
	Resolve(ctx context.Context, senderID string) takeover.Mode
}

// IntentDetector produces a fulfillment reply for one utterance.
type IntentDetector interface {
	DetectIntent(ctx context.Context, sessionID, utterance string) (string, error)
}

// ReplyDispatcher sends a text reply back to the messaging platform.
type ReplyDispatcher interface {
	SendText(ctx context.Context, to, body string) error
}

// ConversationLogger records one fully processed turn.
type ConversationLogger interface {
	Append(ctx context.Context, turn convlog.Turn)
}

// Controller handles the Meta webhook verification handshake and inbound
// message events.
type Controller struct {
	verifyToken string
	appSecret   string
	takeover    TakeoverResolver
	intents     IntentDetector
	dispatcher  ReplyDispatcher
	convlog     ConversationLogger
}

// NewController creates a new Controller. appSecret may be empty, which
// disables payload signature verification.
func NewController(verifyToken, appSecret string, resolver TakeoverResolver, intents IntentDetector, dispatcher ReplyDispatcher, convLogger ConversationLogger) *Controller {
	return &Controller{
		verifyToken: verifyToken,
		appSecret:   appSecret,
		takeover:    resolver,
		intents:     intents,
		dispatcher:  dispatcher,
		convlog:     convLogger,
	}
}

// VerifyWebhook answers the platform's verification handshake. It echoes the
// challenge only when the mode is "subscribe" and the token matches; every
// other combination is rejected. No side effects.
func (ctrl *Controller) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == ctrl.verifyToken {
		zerolog.Ctx(c.UserContext()).Info().Msg("Webhook verified")
		return c.Status(fiber.StatusOK).SendString(challenge)
	}

	zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification failed")
	return c.SendStatus(fiber.StatusForbidden)
}

// HandleEvent processes one inbound webhook event. Events that are not text
// messages are acknowledged without action. Downstream failures never turn
// into non-2xx responses: the platform only distinguishes 2xx from retry, and
// none of these failures are retry-recoverable.
func (ctrl *Controller) HandleEvent(c *fiber.Ctx) error {
	if ctrl.appSecret != "" && !ctrl.validSignature(c.Body(), c.Get("X-Hub-Signature-256")) {
		zerolog.Ctx(c.UserContext()).Warn().Msg("Invalid webhook payload signature")
		return c.SendStatus(fiber.StatusForbidden)
	}

	var payload EventPayload
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	msg, ok := ExtractInbound(&payload)
	if !ok {
		// Delivery receipts, status updates, media. Acknowledge and move on.
		return c.SendStatus(fiber.StatusOK)
	}

	turnID := uuid.New().String()
	logger := zerolog.Ctx(c.UserContext()).With().
		Str("turnId", turnID).
		Str("senderId", msg.SenderID).
		Logger()
	ctx := c.Context()

	if ctrl.takeover.Resolve(ctx, msg.SenderID) == takeover.ModeManual {
		logger.Info().Msg("Conversation in manual takeover, suppressing automated reply")
		return c.SendStatus(fiber.StatusOK)
	}

	// The sender id doubles as the Dialogflow session id so the agent keeps
	// conversational context across turns.
	reply, err := ctrl.intents.DetectIntent(ctx, msg.SenderID, msg.Text)
	if err != nil {
		logger.Error().Err(err).Msg("Intent detection failed, leaving message unanswered")
		return c.SendStatus(fiber.StatusOK)
	}

	delivered := true
	if err := ctrl.dispatcher.SendText(ctx, msg.SenderID, reply); err != nil {
		logger.Error().Err(err).Msg("Failed to send reply")
		delivered = false
	}

	ctrl.convlog.Append(ctx, convlog.Turn{
		TurnID:       turnID,
		SenderID:     msg.SenderID,
		InboundText:  msg.Text,
		OutboundText: reply,
		Delivered:    delivered,
	})

	return c.SendStatus(fiber.StatusOK)
}

func (ctrl *Controller) validSignature(body []byte, header string) bool {
	if len(header) <= len(signaturePrefix) || header[:len(signaturePrefix)] != signaturePrefix {
		return false
	}
	mac := hmac.New(sha256.New, []byte(ctrl.appSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(header[len(signaturePrefix):]), []byte(expected))
}
