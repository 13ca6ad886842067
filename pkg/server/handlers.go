package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	tkerrors "github.com/vango-dev/toastkit/internal/errors"
	"github.com/vango-dev/toastkit/pkg/dom"
	"github.com/vango-dev/toastkit/pkg/loop"
	"github.com/vango-dev/toastkit/pkg/render"
	"github.com/vango-dev/toastkit/pkg/toast"
)

// CreateRequest is the body of POST /api/toasts.
type CreateRequest struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// CreateResponse is returned by POST /api/toasts.
type CreateResponse struct {
	ID string `json:"id"`
}

// ToastInfo describes a toast in the container.
type ToastInfo struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Exiting bool   `json:"exiting"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var html strings.Builder
	var renderErr error
	err := s.loop.Call(r.Context(), func() {
		s.toaster.Container()
		renderErr = s.renderer.RenderPage(&html, render.PageData{
			Body:    s.doc.Body().ToVNode(),
			Title:   s.config.Title,
			Styles:  []string{pageStyles},
			Scripts: []string{pageScript},
		})
	})
	if err == nil {
		err = renderErr
	}
	if err != nil {
		s.writeLoopError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html.String()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.loop.IsClosed() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT_READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ALIVE"))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var list []ToastInfo
	err := s.loop.Call(r.Context(), func() {
		list = describeToasts(toast.List(s.doc, s.toaster.Config()))
	})
	if err != nil {
		s.writeLoopError(w, err)
		return
	}
	if list == nil {
		list = []ToastInfo{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, tkerrors.New("E300").Wrap(err))
		return
	}
	// An empty type is an API default only. Show maps it to the alert
	// variant like any other unknown type.
	typ := toast.Type(req.Type)
	if typ == "" {
		typ = toast.TypeInfo
	}

	var id string
	err := s.Do(r.Context(), func(t *toast.Toaster) {
		id = t.Show(r.Context(), req.Message, typ).ID()
	})
	if err != nil {
		s.writeLoopError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateResponse{ID: id})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.closeToast(r, id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, tkerrors.New("E201").
			WithDetail("No toast with ID "+id+" is in the document."))
	default:
		s.writeLoopError(w, err)
	}
}

func (s *Server) closeToast(r *http.Request, id string) error {
	found := false
	if err := s.loop.Call(r.Context(), func() {
		found = toast.Close(s.doc, id)
	}); err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Server) writeLoopError(w http.ResponseWriter, err error) {
	if errors.Is(err, loop.ErrClosed) || errors.Is(err, loop.ErrQueueFull) {
		writeError(w, http.StatusServiceUnavailable, tkerrors.New("E200").Wrap(err))
		return
	}
	s.logger.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, tkerrors.Newf(tkerrors.CategoryRuntime, "%v", err))
}

func describeToasts(nodes []*dom.Node) []ToastInfo {
	out := make([]ToastInfo, 0, len(nodes))
	for _, n := range nodes {
		id, _ := n.Attr(toast.IDAttr)
		info := ToastInfo{
			ID:      id,
			Exiting: n.ClassList().Contains(toast.ExitClass),
		}
		for _, c := range n.ClassList().Values() {
			if c != "toast" && c != toast.ExitClass && strings.HasPrefix(c, "toast-") {
				info.Type = strings.TrimPrefix(c, "toast-")
				break
			}
		}
		if msg := n.QuerySelectorClass(toast.MessageClass); msg != nil {
			info.Message = msg.TextContent()
		}
		out = append(out, info)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err *tkerrors.ToastError) {
	resp := ErrorResponse{
		Code:    err.Code,
		Message: err.Message,
		Detail:  err.Detail,
	}
	if err.Wrapped != nil {
		resp.Detail = err.Wrapped.Error()
	}
	writeJSON(w, status, resp)
}
