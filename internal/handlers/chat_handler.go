package handlers

import (
	"bytes"
	"errors"
	"image/png"
	"net/url"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/arohalabs/pocket-cfo-be/internal/services"
)

type ChatHandler struct {
	conversationService *services.ConversationService
	baseURL             string
}

func NewChatHandler(conversationService *services.ConversationService, baseURL string) *ChatHandler {
	return &ChatHandler{
		conversationService: conversationService,
		baseURL:             baseURL,
	}
}

// ListConversations godoc
// @Summary List conversations
// @Description All conversations plus the active selection
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /conversations [get]
func (h *ChatHandler) ListConversations(c *fiber.Ctx) error {
	conversations, activeID := h.conversationService.List()

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"conversations":        conversations,
			"activeConversationId": activeID,
		},
	})
}

// GetConversation godoc
// @Summary Get a conversation with its messages
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id} [get]
func (h *ChatHandler) GetConversation(c *fiber.Ctx) error {
	conv, err := h.conversationService.Get(c.Params("id"))
	if err != nil {
		return conversationError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"conversation":  conv,
			"awaitingReply": h.conversationService.AwaitingReply(conv.ID),
		},
	})
}

// CreateConversation godoc
// @Summary Start a new conversation
// @Tags Chat
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Router /conversations [post]
func (h *ChatHandler) CreateConversation(c *fiber.Ctx) error {
	created, err := h.conversationService.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   created,
	})
}

// DeleteConversation godoc
// @Summary Delete a conversation
// @Description Drops any reply still in flight for it
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id} [delete]
func (h *ChatHandler) DeleteConversation(c *fiber.Ctx) error {
	if err := h.conversationService.Delete(c.Params("id")); err != nil {
		return conversationError(c, err)
	}

	conversations, activeID := h.conversationService.List()
	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"conversations":        conversations,
			"activeConversationId": activeID,
		},
	})
}

// ActivateConversation godoc
// @Summary Switch the active conversation
// @Description A reply pending on the conversation being left is cancelled
// @Tags Chat
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /conversations/{id}/activate [patch]
func (h *ChatHandler) ActivateConversation(c *fiber.Ctx) error {
	if err := h.conversationService.SetActive(c.Params("id")); err != nil {
		return conversationError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"activeConversationId": c.Params("id"),
		},
	})
}

// SendMessage godoc
// @Summary Ask the CFO a question
// @Description Appends the question immediately; the assistant's reply lands after a short thinking delay. A second question while a reply is pending is rejected.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Conversation id"
// @Param message body object true "Question" example({"question": "How do I extend my runway?"})
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /conversations/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	userMsg, err := h.conversationService.SendMessage(c.Params("id"), req.Question)
	if err != nil {
		if errors.Is(err, services.ErrReplyPending) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return conversationError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"message":       userMsg,
			"awaitingReply": true,
		},
	})
}

// GetAskQR godoc
// @Summary QR code deep link into the ask page
// @Description PNG QR code encoding the ask page URL with the question prefilled
// @Tags Chat
// @Produce png
// @Param q query string true "Question to prefill"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Router /ask/qr [get]
func (h *ChatHandler) GetAskQR(c *fiber.Ctx) error {
	question := c.Query("q")
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required",
		})
	}

	link := h.baseURL + "/ask?q=" + url.QueryEscape(question)

	img, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate QR code",
		})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img.Image(256)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to encode QR code",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

func conversationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrConversationNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
