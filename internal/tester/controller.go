// Package tester drives the interactive API tester: it loads samples into
// the editor, dispatches requests and feeds the outcome back into the
// application state and the notification center.
package tester

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/shhac/featuredesk/internal/domain"
	apperrors "github.com/shhac/featuredesk/internal/errors"
	"github.com/shhac/featuredesk/internal/model"
	"github.com/shhac/featuredesk/internal/notify"
)

// Notification texts shown after a dispatch.
const (
	MessageSuccess = "Request successful!"
	MessageFailed  = "Request failed"
	MessageCopied  = "Copied to clipboard!"
)

// Sender performs one exchange with the feature API.
type Sender interface {
	Send(ctx context.Context, ep domain.Endpoint, draft string) (*domain.ResponseRecord, error)
}

// Notifier shows a transient notification.
type Notifier interface {
	Notify(message string, kind notify.Kind) string
}

// Controller coordinates the request editor, the dispatcher and the
// response panel.
type Controller struct {
	state    *model.ApplicationState
	sender   Sender
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time

	inFlight atomic.Bool
}

// NewController creates a controller and loads the sample for the
// currently selected endpoint.
func NewController(state *model.ApplicationState, sender Sender, notifier Notifier, logger *slog.Logger) *Controller {
	c := &Controller{
		state:    state,
		sender:   sender,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	c.state.Request.ApplyDraft(model.LoadSample(state.Endpoint()))
	return c
}

// SelectEndpoint switches the tester to ep and replaces the editor
// contents with its sample.
func (c *Controller) SelectEndpoint(ep domain.Endpoint) {
	c.logger.Debug("endpoint selected", slog.String("endpoint", ep.Path()))

	_ = c.state.SelectedEndpoint.Set(ep.Path())
	c.state.Request.ApplyDraft(model.LoadSample(ep))
}

// Sending reports whether a dispatch is in progress.
func (c *Controller) Sending() bool {
	return c.inFlight.Load()
}

// Send dispatches the current draft for the selected endpoint and blocks
// until the response panel has been updated. It returns
// ErrRequestInFlight without doing anything when a dispatch is already
// running; otherwise it returns the exchange error, which has already
// been rendered.
func (c *Controller) Send(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug("send ignored, request already in flight")
		return apperrors.ErrRequestInFlight
	}
	defer c.inFlight.Store(false)

	c.state.Request.SetSending(true)
	defer c.state.Request.SetSending(false)

	ep := c.state.Endpoint()
	draft, _ := c.state.Request.TextData.Get()

	rec, err := c.sender.Send(ctx, ep, draft)
	if err != nil {
		c.logger.Warn("request failed",
			slog.String("endpoint", ep.Path()),
			slog.Any("error", err),
		)
		c.state.Response.Apply(model.RenderError(err, c.now()))
		c.notifier.Notify("Error: "+err.Error(), notify.KindError)
		return err
	}

	view := model.RenderResponse(*rec)
	c.state.Response.Apply(view)
	if view.IsError {
		c.notifier.Notify(MessageFailed, notify.KindError)
	} else {
		c.notifier.Notify(MessageSuccess, notify.KindSuccess)
	}
	return nil
}

// FormatDraft pretty-prints the editor contents when they are valid JSON.
func (c *Controller) FormatDraft() {
	draft, _ := c.state.Request.TextData.Get()
	_ = c.state.Request.TextData.Set(model.FormatJSON(draft))
}

// ClearResponse empties the response panel.
func (c *Controller) ClearResponse() {
	c.state.Response.Clear()
}

// Copied announces a successful clipboard copy.
func (c *Controller) Copied() {
	c.notifier.Notify(MessageCopied, notify.KindSuccess)
}
