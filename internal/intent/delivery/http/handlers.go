package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsarta/synapse/internal/intent"
	"github.com/fsarta/synapse/internal/model"
	"github.com/fsarta/synapse/pkg/response"
)

// Parse godoc
// @Summary     Extract an intent from text
// @Description Sends the text to the configured LLM provider once and returns a validated intent.
// @Description Successful calls count towards the caller's daily usage.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body parseReq true "Text and optional context"
// @Success     200 {object} intentResp
// @Failure     400 {object} response.Resp "Text input is required / Content flagged as unsafe"
// @Failure     401 {object} response.Resp "No token / Invalid token"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Parsing failed"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	// An unreadable body has no usable text either.
	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, MessageTextRequired)
		return
	}

	result, err := h.uc.Extract(ctx, req.toInput(sc))
	if err != nil {
		status, msg := h.mapError(err)
		if status >= http.StatusInternalServerError {
			h.l.Errorf(ctx, "uc.Extract: user=%s kind=%s: %v", sc.UserID, intent.KindOf(err), err)
		}
		response.Error(c, status, msg)
		return
	}

	// The extraction is billable even if the client has already gone away.
	if err := h.meter.Increment(context.WithoutCancel(ctx), sc.UserID); err != nil {
		h.l.Warnf(ctx, "meter.Increment: user=%s: %v", sc.UserID, err)
	}

	response.OK(c, newIntentResp(result))
}

// Dispatch godoc
// @Summary     Create a calendar event from an intent
// @Description Re-validates a create_event intent and creates a one hour Google Calendar event.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body intentResp true "Intent returned by /parse"
// @Success     200 {object} dispatchResp
// @Failure     400 {object} response.Resp "Invalid intent / not dispatchable"
// @Failure     401 {object} response.Resp "No token / Invalid token"
// @Failure     502 {object} response.Resp "Calendar dispatch failed"
// @Router      /api/v1/intents/dispatch [POST]
func (h *handler) Dispatch(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := model.GetScopeFromContext(ctx)

	in, err := h.processDispatchReq(c)
	if err != nil {
		if !errors.Is(err, intent.ErrInvalidSchema) {
			response.BadRequest(c, MessageInvalidBody)
			return
		}
		status, msg := h.mapDispatchError(err)
		response.Error(c, status, msg)
		return
	}

	out, err := h.uc.Dispatch(ctx, intent.DispatchInput{Intent: in, Scope: sc})
	if err != nil {
		h.l.Errorf(ctx, "uc.Dispatch: user=%s: %v", sc.UserID, err)
		status, msg := h.mapDispatchError(err)
		response.Error(c, status, msg)
		return
	}

	response.OK(c, newDispatchResp(out))
}
