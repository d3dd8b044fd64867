package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comanda-pos/order-svc/internal/domain"
	"comanda-pos/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders service.OrderServiceInterface
}

func NewHandler(orderSvc service.OrderServiceInterface) *Handler {
	return &Handler{Orders: orderSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/comandas", h.createComanda).Methods("POST")
	r.HandleFunc("/api/comandas/{id}", h.getComanda).Methods("GET")
	r.HandleFunc("/api/comandas/{id}", h.deleteComanda).Methods("DELETE")
	r.HandleFunc("/api/comandas/mesa/{mesaId}", h.getComandaByMesa).Methods("GET")
	r.HandleFunc("/api/comandas/familiar/{mesaFamiliarId}", h.getComandaByFamiliar).Methods("GET")

	r.HandleFunc("/api/boleta/{comandaId}", h.confirmarPago).Methods("POST")
	r.HandleFunc("/api/boleta/{comandaId}", h.getBoleta).Methods("GET")
	r.HandleFunc("/api/boleta/{comandaId}/qrcode", h.getBoletaQR).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createComanda(w http.ResponseWriter, r *http.Request) {
	var comanda domain.Comanda
	if err := json.NewDecoder(r.Body).Decode(&comanda); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Orders.Create(r.Context(), &comanda); err != nil {
		switch {
		case errors.Is(err, service.ErrComandaInvalida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrComandaActiva):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comanda)
}

func (h *Handler) getComanda(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	comanda, err := h.Orders.Get(id)
	if err != nil {
		http.Error(w, "Comanda not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comanda)
}

func (h *Handler) getComandaByMesa(w http.ResponseWriter, r *http.Request) {
	mesaID, _ := strconv.Atoi(mux.Vars(r)["mesaId"])
	comanda, err := h.Orders.GetByMesa(mesaID)
	if err != nil {
		http.Error(w, "Comanda not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comanda)
}

func (h *Handler) getComandaByFamiliar(w http.ResponseWriter, r *http.Request) {
	familiarID, _ := strconv.Atoi(mux.Vars(r)["mesaFamiliarId"])
	comanda, err := h.Orders.GetByFamiliar(familiarID)
	if err != nil {
		http.Error(w, "Comanda not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comanda)
}

func (h *Handler) deleteComanda(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Orders.Delete(id); err != nil {
		if errors.Is(err, service.ErrComandaNotFound) {
			http.Error(w, "Comanda not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"deleted": id})
}

func (h *Handler) confirmarPago(w http.ResponseWriter, r *http.Request) {
	comandaID, _ := strconv.Atoi(mux.Vars(r)["comandaId"])
	boleta, err := h.Orders.ConfirmarPago(r.Context(), comandaID)
	if err != nil {
		if errors.Is(err, service.ErrComandaNotFound) {
			http.Error(w, "Comanda not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(boleta)
}

func (h *Handler) getBoleta(w http.ResponseWriter, r *http.Request) {
	comandaID, _ := strconv.Atoi(mux.Vars(r)["comandaId"])
	boleta, err := h.Orders.GetBoleta(comandaID)
	if err != nil {
		http.Error(w, "Boleta not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(boleta)
}

func (h *Handler) getBoletaQR(w http.ResponseWriter, r *http.Request) {
	comandaID, _ := strconv.Atoi(mux.Vars(r)["comandaId"])
	qr, err := h.Orders.GetBoletaQR(comandaID)
	if err != nil || len(qr) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}
