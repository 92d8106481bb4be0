package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/domain"
)

const (
	sseKeepAlive = 25 * time.Second

	streamErrorEvent    = "error"
	streamFailedMessage = "Live updates stopped because of a server problem, please reconnect"
)

// streamFeed writes every update of feed to the client as a server-sent event
// until the client goes away or the feed ends. A feed that ends with an error
// is reported to the client as a final "error" event. The feed is closed on
// return.
func streamFeed[T any, R any](
	app *Application,
	w http.ResponseWriter,
	r *http.Request,
	event string,
	feed *domain.Feed[T],
	convert func(T) R) {

	logger := app.contextGetLogger(r)

	defer func() {
		err := feed.Close()
		if err != nil {
			logger.Error("failed to close feed", "event", event, "error", err)
		}
	}()

	rc := http.NewResponseController(w)

	// the server write timeout would otherwise cut long-lived streams
	err := rc.SetWriteDeadline(time.Time{})
	if err != nil {
		logger.Warn("failed to clear write deadline, stream is subject to the server write timeout",
			"event", event, "error", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err = rc.Flush()
	if err != nil {
		logger.Error("streaming is not supported by the response writer", "error", err)
		return
	}

	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug("event stream closed by client", "event", event)
			return

		case <-keepAlive.C:
			_, err = fmt.Fprint(w, ": keep-alive\n\n")
			if err == nil {
				err = rc.Flush()
			}

		case update, ok := <-feed.Updates():
			if !ok {
				failure := feed.Err()
				if failure == nil {
					logger.Debug("event stream ended by feed", "event", event)
					return
				}

				logger.Error("event stream ended by feed failure", "event", event, "error", failure)

				err = writeEvent(w, streamErrorEvent, api.ErrorResponse{
					Message:   streamFailedMessage,
					RequestId: middleware.GetReqID(r.Context()),
					Timestamp: app.now(),
				})
				if err == nil {
					err = rc.Flush()
				}
				if err != nil {
					logger.Warn("failed to write event", "event", streamErrorEvent, "error", err)
				}

				return
			}

			err = writeEvent(w, event, convert(update))
			if err == nil {
				err = rc.Flush()
			}
		}

		if err != nil {
			logger.Warn("failed to write event", "event", event, "error", err)
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, js)
	return err
}
