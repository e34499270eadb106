package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/jekabolt/lottery-manager/internal/form"
	"github.com/jekabolt/lottery-manager/internal/middleware"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeMessage(w, http.StatusServiceUnavailable, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) join(w http.ResponseWriter, r *http.Request) {
	req := &form.JoinRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.limiter.CheckJoin(middleware.GetClientIP(r.Context()), req.EntrantId); err != nil {
		writeMessage(w, http.StatusTooManyRequests, err.Error())
		return
	}
	entry, err := s.lottery.Join(r.Context(), joinInsert(chi.URLParam(r, "eventId"), req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, convertEntry(entry))
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	st := entity.StatusWaiting
	if q := r.URL.Query().Get("status"); q != "" {
		var ok bool
		if st, ok = entity.ParseEntryStatus(q); !ok {
			writeError(w, r, gerr.InvalidArgument("unknown status %q", q))
			return
		}
	}
	entries, err := s.lottery.Entries(r.Context(), chi.URLParam(r, "eventId"), st)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": convertEntries(entries)})
}

func (s *Server) count(w http.ResponseWriter, r *http.Request) {
	n, err := s.lottery.Count(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (s *Server) entrantEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.EntrantEntry(r.Context(), chi.URLParam(r, "eventId"), chi.URLParam(r, "entrantId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertEntry(entry))
}

func (s *Server) entrantEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.lottery.EntrantEntries(r.Context(), chi.URLParam(r, "entrantId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": convertEntries(entries)})
}

func (s *Server) draw(w http.ResponseWriter, r *http.Request) {
	s.runDraw(w, r, false)
}

func (s *Server) replenish(w http.ResponseWriter, r *http.Request) {
	s.runDraw(w, r, true)
}

func (s *Server) runDraw(w http.ResponseWriter, r *http.Request, replenish bool) {
	req := &form.DrawRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.limiter.CheckDraw(middleware.GetClientIP(r.Context())); err != nil {
		writeMessage(w, http.StatusTooManyRequests, err.Error())
		return
	}

	run := s.lottery.Draw
	if replenish {
		run = s.lottery.Replenish
	}
	winners, err := run(r.Context(), drawRequest(chi.URLParam(r, "eventId"), req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.notifyDrawResult(r.Context(), chi.URLParam(r, "eventId"), winners)
	writeJSON(w, http.StatusOK, map[string]any{"winners": convertEntries(winners)})
}

// notifyDrawResult tells winners and the entrants left waiting how the draw
// went. A failure is logged and never undoes the draw.
func (s *Server) notifyDrawResult(ctx context.Context, eventId string, winners []entity.WaitingPoolEntry) {
	if s.notifier == nil || len(winners) == 0 {
		return
	}
	if err := s.notifier.NotifySelected(ctx, winners); err != nil {
		slog.Default().ErrorContext(ctx, "can't notify selected entrants",
			slog.String("event_id", eventId),
			slog.String("err", err.Error()),
		)
	}
	if err := s.notifier.NotifyNotSelected(ctx, eventId, winners); err != nil {
		slog.Default().ErrorContext(ctx, "can't notify entrants left waiting",
			slog.String("event_id", eventId),
			slog.String("err", err.Error()),
		)
	}
}

func (s *Server) notifyEntrants(w http.ResponseWriter, r *http.Request) {
	if s.notifier == nil {
		writeMessage(w, http.StatusNotImplemented, "notifications are disabled")
		return
	}
	req := &form.NotifyRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	var st entity.EntryStatus
	if req.Status != "" {
		var ok bool
		if st, ok = entity.ParseEntryStatus(req.Status); !ok {
			writeError(w, r, gerr.InvalidArgument("unknown status %q", req.Status))
			return
		}
	}
	n, err := s.notifier.NotifyEntrants(r.Context(), chi.URLParam(r, "eventId"), st, req.Title, req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"notified": n})
}

func (s *Server) getEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.Entry(r.Context(), chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertEntry(entry))
}

func (s *Server) entryDeadline(w http.ResponseWriter, r *http.Request) {
	entry, d, err := s.lottery.EntryDeadline(r.Context(), chi.URLParam(r, "entryId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertDeadline(entry, d))
}

func (s *Server) accept(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.Accept(r.Context(), chi.URLParam(r, "entryId"))
	s.writeEntry(w, r, entry, err)
}

func (s *Server) decline(w http.ResponseWriter, r *http.Request) {
	req := &form.DeclineRequest{}
	if err := decode(r, req); err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := s.lottery.Decline(r.Context(), chi.URLParam(r, "entryId"), req.Reason)
	s.writeEntry(w, r, entry, err)
}

func (s *Server) cancel(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.Cancel(r.Context(), chi.URLParam(r, "entryId"))
	s.writeEntry(w, r, entry, err)
}

func (s *Server) enroll(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.Enroll(r.Context(), chi.URLParam(r, "entryId"))
	s.writeEntry(w, r, entry, err)
}

func (s *Server) expire(w http.ResponseWriter, r *http.Request) {
	entry, err := s.lottery.Expire(r.Context(), chi.URLParam(r, "entryId"))
	s.writeEntry(w, r, entry, err)
}

func (s *Server) writeEntry(w http.ResponseWriter, r *http.Request, entry *entity.WaitingPoolEntry, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertEntry(entry))
}

func (s *Server) userNotifications(w http.ResponseWriter, r *http.Request) {
	if s.notifier == nil {
		writeJSON(w, http.StatusOK, map[string]any{"notifications": []notificationResponse{}})
		return
	}
	ns, err := s.notifier.ForUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": convertNotifications(ns)})
}

func (s *Server) markRead(w http.ResponseWriter, r *http.Request) {
	if s.notifier == nil {
		writeMessage(w, http.StatusNotImplemented, "notifications are disabled")
		return
	}
	if err := s.notifier.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
