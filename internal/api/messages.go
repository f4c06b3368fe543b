package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/tutor"
)

// recentTopics is how many answers /api/stats summarizes.
const recentTopics = 5

// CategoryError marks an answer that timed out.
const CategoryError = "error"

type CreateMessageRequest struct {
	Text   string `json:"text"`
	UserID string `json:"userId"`
}

type CreateMessageResponse struct {
	UserMessage *store.Message `json:"userMessage"`
	AIMessage   *store.Message `json:"aiMessage"`
	Category    string         `json:"category"`
}

func (h *Handler) ListMessagesHandler(c *gin.Context) {
	filter := store.MessageFilter{
		Subject: c.Query("subject"),
		UserID:  c.Query("userId"),
	}
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			BadRequest(c, fmt.Sprintf("invalid limit: %s", l))
			return
		}
		filter.Limit = n
	}

	msgs, err := h.messages.List(c.Request.Context(), filter)
	if err != nil {
		Internal(c, fmt.Sprintf("list messages: %v", err))
		return
	}
	if msgs == nil {
		msgs = []store.Message{}
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) CreateMessageHandler(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		BadRequest(c, "text is required")
		return
	}
	if req.UserID == "" {
		req.UserID = tutor.AnonymousUser
	}

	ctx := c.Request.Context()
	pairID := uuid.NewString()

	userMsg := tutor.QuestionMessage(pairID, req.UserID, req.Text)
	if err := h.messages.Append(ctx, userMsg); err != nil {
		Internal(c, fmt.Sprintf("save user message: %v", err))
		return
	}

	result, ok := h.answer(ctx, req.Text, req.UserID)
	if !ok {
		result = tutor.Result{Response: TimeoutMessage, Subject: CategoryError}
	}
	aiMsg := tutor.AnswerMessage(pairID, req.UserID, result)

	// The answer is stored even when the client has gone away.
	if err := h.messages.Append(context.WithoutCancel(ctx), aiMsg); err != nil {
		Internal(c, fmt.Sprintf("save answer: %v", err))
		return
	}

	c.JSON(http.StatusCreated, CreateMessageResponse{
		UserMessage: userMsg,
		AIMessage:   aiMsg,
		Category:    aiMsg.Category,
	})
}

// answer races the tutor against the request timeout. ok is false when
// the deadline fired first; the tutor keeps running and still updates the
// user's conversation context.
func (h *Handler) answer(ctx context.Context, question, userID string) (tutor.Result, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan tutor.Result, 1)
	go func() {
		done <- h.tutor.Handle(ctx, question, userID)
	}()

	select {
	case r := <-done:
		return r, true
	case <-ctx.Done():
		h.log.WithFields(log.Fields{
			"user":    userID,
			"timeout": h.timeout.String(),
		}).Warn("answer timed out")
		return tutor.Result{}, false
	}
}

func (h *Handler) StatsHandler(c *gin.Context) {
	stats, err := h.messages.Stats(c.Request.Context(), recentTopics)
	if err != nil {
		Internal(c, fmt.Sprintf("learning stats: %v", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
