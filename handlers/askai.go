package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"legal_ai_site/logger"
	"legal_ai_site/middleware"
	"legal_ai_site/services/chat"
	"legal_ai_site/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	askAIPath    = "/askai"
	sseHeartbeat = 15 * time.Second

	noticeEmpty   = "Please enter a question."
	noticePending = "Please wait for the current answer before asking another question."
)

// openAskAI makes sure the assistant is mounted for the visitor and returns
// its view. Posting from a stale tab remounts it.
func openAskAI(c echo.Context) (*pageView, error) {
	o := middleware.GetOrchestrator(c)
	if o == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "visitor session unavailable")
	}
	view, _, err := o.Visit(c.Request().Context(), askAIPath, nil)
	if err != nil {
		return nil, err
	}
	pv, ok := view.(*pageView)
	if !ok || pv.session == nil {
		return nil, echo.NewHTTPError(http.StatusConflict, "the assistant is not open")
	}
	return pv, nil
}

// currentAskAI returns the tab's mounted assistant view without navigating,
// or nil
func currentAskAI(c echo.Context) *pageView {
	o := middleware.FindOrchestrator(c)
	if o == nil {
		return nil
	}
	view, _ := o.Current()
	pv, ok := view.(*pageView)
	if !ok || pv.session == nil {
		return nil
	}
	return pv
}

// AskSubmit sends the question. The response swaps the form and, out of
// band, the log; the answer arrives through the event stream.
func (s *Site) AskSubmit(c echo.Context) error {
	pv, err := openAskAI(c)
	if err != nil {
		return err
	}
	session := pv.session
	query := c.FormValue("query")

	if !session.Submit(query) {
		if !isHTMX(c) {
			return c.Redirect(http.StatusSeeOther, tabPath(c, askAIPath))
		}
		if session.State() == chat.StateSending {
			session.SetInput(query)
			return render(c, http.StatusConflict, components.ChatForm(query, true, noticePending))
		}
		return render(c, http.StatusUnprocessableEntity, components.ChatForm("", false, noticeEmpty))
	}

	logger.WithFields(logrus.Fields{
		"session": session.ID,
		"length":  len(strings.TrimSpace(query)),
	}).Debug("research question submitted")

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, tabPath(c, askAIPath))
	}
	return render(c, http.StatusOK, components.ChatFormWithLog(session.Snapshot()))
}

// AskDraft replaces the input draft, e.g. from a sample question
func (s *Site) AskDraft(c echo.Context) error {
	pv, err := openAskAI(c)
	if err != nil {
		return err
	}
	pv.session.SetInput(c.FormValue("input"))
	snap := pv.session.Snapshot()

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, tabPath(c, askAIPath))
	}
	return render(c, http.StatusOK, components.ChatForm(snap.Input, snap.State == chat.StateSending, ""))
}

// AskMessages returns the current log
func (s *Site) AskMessages(c echo.Context) error {
	pv := currentAskAI(c)
	if pv == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return render(c, http.StatusOK, components.ChatMessages(pv.session.Snapshot()))
}

// AskEvents streams the log and the submit button as server sent events
// until the client leaves or the session closes. 204 tells EventSource not
// to reconnect when the assistant is not mounted in the tab.
func (s *Site) AskEvents(c echo.Context) error {
	pv := currentAskAI(c)
	if pv == nil {
		return c.NoContent(http.StatusNoContent)
	}
	session := pv.session

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	updates, cancel := session.Updates().Latest()
	defer cancel()

	ctx := c.Request().Context()
	fields := logrus.Fields{"session": session.ID}
	if err := writeChatEvents(ctx, w, session.Snapshot()); err != nil {
		logger.WithFields(fields).WithError(err).Debug("chat stream closed")
		return nil
	}

	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-session.Done():
			return nil
		case snap := <-updates:
			if err := writeChatEvents(ctx, w, snap); err != nil {
				logger.WithFields(fields).WithError(err).Debug("chat stream closed")
				return nil
			}
		case <-heartbeat.C:
			if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeChatEvents(ctx context.Context, w *echo.Response, snap chat.Snapshot) error {
	if err := writeEvent(ctx, w, components.ChatEventMessages, components.ChatMessages(snap)); err != nil {
		return err
	}
	if err := writeEvent(ctx, w, components.ChatEventStatus, components.ChatSubmit(snap.State == chat.StateSending)); err != nil {
		return err
	}
	w.Flush()
	return nil
}

// writeEvent renders c as one SSE event, one data line per output line
func writeEvent(ctx context.Context, w io.Writer, event string, c templ.Component) error {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "event: %s\n", event)
	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Fprintf(&out, "data: %s\n", line)
	}
	out.WriteString("\n")

	_, err := io.WriteString(w, out.String())
	return err
}
