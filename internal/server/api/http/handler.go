// Package http exposes the currency cache as a small read-only API
// consumed by the bot over loopback.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// NotReadyText returned while a currency has no completed refresh yet.
const NotReadyText = "Данные по валюте ещё не загружены, попробуйте позже"

// Service is the read projection over the currency cache.
type Service interface {
	Codes() []string
	Known(code string) bool
	RateText(code string) (string, bool)
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCodes renders the JSON list of supported currency codes.
func (h *Handler) GetCodes(w http.ResponseWriter, _ *http.Request) {
	logrus.Info("Переход в рут")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Codes()); err != nil {
		logrus.WithError(err).Error("Failed to encode currency codes")
	}
}

// GetRate renders the plain-text rate sentence for one currency code.
// Responds 404 for unsupported codes and 503 while the entry is not ready.
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))
	logrus.Infof("Переход на /%s", code)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !h.service.Known(code) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Такая валюта не поддерживается"))
		return
	}
	text, ok := h.service.RateText(code)
	if !ok {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(NotReadyText))
		return
	}
	w.Write([]byte(text))
}
