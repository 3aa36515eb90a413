package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel_api/internal/app"
	"hotel_api/internal/domain"
)

type Handlers struct{ S *app.RecordService }

type createRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

// Date stays nil when absent and reaches storage as NULL.
type searchRequest struct {
	Date *string `json:"date"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", healthz)
	s.mux.Post("/api/create/hotel", h.createHotel)
	s.mux.Get("/api/listhotel", h.listHotels)
	s.mux.Get("/api/listhotel/{id}", h.listHotels)
	s.mux.Post("/api/search/hotel", h.searchHotels)
	s.mux.Get("/api/dashboard/hotel", h.dashboard)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// decodeBody treats an empty body as an empty object.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)
	}
	return nil
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.S.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeEnvelope(w, http.StatusOK, out)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeEnvelope(w, http.StatusOK, out)
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.S.SearchByDate(r.Context(), req.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeEnvelope(w, http.StatusOK, out)
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.S.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeEnvelope(w, http.StatusOK, out)
}
