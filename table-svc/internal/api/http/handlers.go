package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"comanda-pos/table-svc/internal/domain"
	"comanda-pos/table-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Tables service.TableServiceInterface
}

func NewHandler(tableSvc service.TableServiceInterface) *Handler {
	return &Handler{Tables: tableSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/mesas", h.createMesa).Methods("POST")
	r.HandleFunc("/api/mesas", h.getMesas).Methods("GET")
	r.HandleFunc("/api/mesas/{id}", h.getMesa).Methods("GET")
	r.HandleFunc("/api/mesas/{id}", h.updateMesa).Methods("PUT")
	r.HandleFunc("/api/mesas/{id}", h.deleteMesa).Methods("DELETE")

	r.HandleFunc("/api/mesas-familiares", h.createFamiliar).Methods("POST")
	r.HandleFunc("/api/mesas-familiares", h.getFamiliares).Methods("GET")
	r.HandleFunc("/api/mesas-familiares/{id}", h.getFamiliar).Methods("GET")
	r.HandleFunc("/api/mesas-familiares/{id}", h.updateFamiliar).Methods("PUT")
	r.HandleFunc("/api/mesas-familiares/{id}", h.deleteFamiliar).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "table-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createMesa(w http.ResponseWriter, r *http.Request) {
	var mesa domain.Mesa
	if err := json.NewDecoder(r.Body).Decode(&mesa); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.CreateMesa(r.Context(), &mesa); err != nil {
		if errors.Is(err, service.ErrEstadoInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(mesa)
}

func (h *Handler) getMesas(w http.ResponseWriter, r *http.Request) {
	mesas, err := h.Tables.ListMesas(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mesas)
}

func (h *Handler) getMesa(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	mesa, err := h.Tables.GetMesa(r.Context(), id)
	if err != nil {
		http.Error(w, "Mesa not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(mesa)
}

func (h *Handler) updateMesa(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.UpdateMesaEstado(r.Context(), id, payload.Estado); err != nil {
		switch {
		case errors.Is(err, service.ErrEstadoInvalido):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrMesaNotFound):
			http.Error(w, "Mesa not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "estado": payload.Estado})
}

func (h *Handler) deleteMesa(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Tables.DeleteMesa(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Mesa not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createFamiliar(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Nombre   string `json:"nombre"`
		MesasIDs []int  `json:"mesasIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	familiar, err := h.Tables.CreateFamiliar(r.Context(), payload.Nombre, payload.MesasIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGrupoMuyPequeno), errors.Is(err, service.ErrMesaNoDisponible):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrMesaNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(familiar)
}

func (h *Handler) getFamiliares(w http.ResponseWriter, r *http.Request) {
	familiares, err := h.Tables.ListFamiliares()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(familiares)
}

func (h *Handler) getFamiliar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	familiar, err := h.Tables.GetFamiliar(id)
	if err != nil {
		http.Error(w, "Mesa familiar not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(familiar)
}

func (h *Handler) updateFamiliar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Nombre string `json:"nombre"`
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.UpdateFamiliar(r.Context(), id, payload.Nombre, payload.Estado); err != nil {
		switch {
		case errors.Is(err, service.ErrEstadoInvalido):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrFamiliarNotFound):
			http.Error(w, "Mesa familiar not found", http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "estado": payload.Estado})
}

func (h *Handler) deleteFamiliar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Tables.DeleteFamiliar(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrFamiliarNotFound) {
			http.Error(w, "Mesa familiar not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
