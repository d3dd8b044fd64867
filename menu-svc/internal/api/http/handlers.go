package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comanda-pos/menu-svc/internal/domain"
	"comanda-pos/menu-svc/internal/service"
	"comanda-pos/pricing"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu service.MenuServiceInterface
}

func NewHandler(menuSvc service.MenuServiceInterface) *Handler {
	return &Handler{Menu: menuSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/platos", h.createPlato).Methods("POST")
	r.HandleFunc("/api/platos", h.getPlatos).Methods("GET")
	r.HandleFunc("/api/platos/{id}", h.getPlato).Methods("GET")
	r.HandleFunc("/api/platos/{id}", h.updatePlato).Methods("PUT")
	r.HandleFunc("/api/platos/{id}", h.deletePlato).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createPlato(w http.ResponseWriter, r *http.Request) {
	var plato domain.Plato
	if err := json.NewDecoder(r.Body).Decode(&plato); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Menu.Create(&plato); err != nil {
		if errors.Is(err, service.ErrCategoriaInvalida) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(plato)
}

func (h *Handler) getPlatos(w http.ResponseWriter, r *http.Request) {
	categoria := pricing.Category(r.URL.Query().Get("categoria"))
	platos, err := h.Menu.List(categoria)
	if err != nil {
		if errors.Is(err, service.ErrCategoriaInvalida) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(platos)
}

func (h *Handler) getPlato(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	plato, err := h.Menu.Get(id)
	if err != nil {
		http.Error(w, "Plato not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plato)
}

func (h *Handler) updatePlato(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var plato domain.Plato
	if err := json.NewDecoder(r.Body).Decode(&plato); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plato.ID = id
	if err := h.Menu.Update(&plato); err != nil {
		if errors.Is(err, service.ErrCategoriaInvalida) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plato)
}

func (h *Handler) deletePlato(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrPlatoProtegido):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, service.ErrPlatoNotFound):
			http.Error(w, "Plato not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
