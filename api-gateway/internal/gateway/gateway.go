package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"comanda-pos/api-gateway/internal/auth"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AuthService is the slice of the auth package the gateway needs; the tests
// substitute a mock here.
type AuthService interface {
	Login(email, password string) (string, *auth.Usuario, error)
	Register(nombre, email, password, rol string) (*auth.Usuario, error)
	Validate(tokenString string) (*auth.Claims, error)
}

type Config struct {
	TableSvcURL     string
	MenuSvcURL      string
	OrderSvcURL     string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	auth   AuthService
}

func NewGateway(config Config, client HTTPClient, authSvc AuthService) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		auth:   authSvc,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, usuario, err := g.auth.Login(payload.Email, payload.Password)
	if err != nil {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"usuario": usuario,
	})
}

func (g *Gateway) CreateUsuario(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Nombre   string `json:"nombre"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Rol      string `json:"rol"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	usuario, err := g.auth.Register(payload.Nombre, payload.Email, payload.Password, payload.Rol)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, auth.ErrRolInvalido):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(usuario)
}

// claimsFromRequest validates the Bearer token on the request.
func (g *Gateway) claimsFromRequest(r *http.Request) (*auth.Claims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, auth.ErrInvalidToken
	}
	return g.auth.Validate(strings.TrimPrefix(header, "Bearer "))
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	if !strings.HasPrefix(path, "/api/") {
		http.ServeFile(w, r, "./frontend/index.html")
		return
	}

	claims, err := g.claimsFromRequest(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch {
	case strings.HasPrefix(path, "/api/mesas"):
		// Covers /api/mesas and /api/mesas-familiares.
		g.ProxyRequest(w, r, g.config.TableSvcURL)

	case strings.HasPrefix(path, "/api/platos"):
		if r.Method != http.MethodGet && claims.Rol != auth.RolAdministradora {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		g.ProxyRequest(w, r, g.config.MenuSvcURL)

	case strings.HasPrefix(path, "/api/comandas"), strings.HasPrefix(path, "/api/boleta"):
		g.ProxyRequest(w, r, g.config.OrderSvcURL)

	case strings.HasPrefix(path, "/api/ventas"):
		if claims.Rol != auth.RolAdministradora {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)

	default:
		log.Printf("[GATEWAY] Unmatched API route: %s", path)
		http.Error(w, "API route not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.HandleFunc("/api/usuarios/login", g.Login).Methods("POST")
	r.HandleFunc("/api/usuarios", g.requireAdmin(g.CreateUsuario)).Methods("POST")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./frontend/"))))
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}

func (g *Gateway) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := g.claimsFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if claims.Rol != auth.RolAdministradora {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
