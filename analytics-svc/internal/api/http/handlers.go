package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"comanda-pos/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Sales service.SalesInterface
}

func NewHandler(svc service.SalesInterface) *Handler {
	return &Handler{Sales: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/ventas", h.getVentas).Methods("GET")
	r.HandleFunc("/api/ventas/hoy", h.getVentasHoy).Methods("GET")
	r.HandleFunc("/api/ventas/resumen", h.getResumen).Methods("GET")
	r.HandleFunc("/api/ventas/platos/top", h.getTopPlatos).Methods("GET")
}

func (h *Handler) getVentas(w http.ResponseWriter, r *http.Request) {
	ventas, err := h.Sales.ListVentas()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(ventas)
}

func (h *Handler) getVentasHoy(w http.ResponseWriter, r *http.Request) {
	hoy, err := h.Sales.VentasHoy()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(hoy)
}

func (h *Handler) getResumen(w http.ResponseWriter, r *http.Request) {
	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		daysStr = "7"
	}
	days, _ := strconv.Atoi(daysStr)
	summaries, err := h.Sales.Resumen(days)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(summaries)
}

func (h *Handler) getTopPlatos(w http.ResponseWriter, r *http.Request) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		limitStr = "10"
	}
	limit, _ := strconv.Atoi(limitStr)
	ranking, err := h.Sales.TopPlatos(limit)
	if err != nil {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(ranking)
}
