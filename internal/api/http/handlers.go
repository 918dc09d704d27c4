package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cahfua/restaurant-api/internal/service"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

type Handler struct {
	Restaurants service.ResourceServiceInterface
	MenuItems   service.ResourceServiceInterface
	Orders      service.ResourceServiceInterface
	Users       service.ResourceServiceInterface
	Auth        service.AuthServiceInterface

	PublicBaseURL string
	LoginRedirect string
	SessionTTL    time.Duration
}

// guards says which mutations of a resource sit behind the auth middleware.
type guards struct {
	create, update, delete bool
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.liveness).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Auth policy: menu items and users (except delete) are protected,
	// restaurants and orders stay public.
	h.mountResource(r, "/restaurants", h.Restaurants, "restaurant", guards{})
	h.mountResource(r, "/menuItems", h.MenuItems, "menu item", guards{create: true, update: true, delete: true})
	h.mountResource(r, "/orders", h.Orders, "order", guards{})
	h.mountResource(r, "/users", h.Users, "user", guards{create: true, update: true})

	r.HandleFunc("/orders/{id}/qrcode", h.orderQRCode).Methods("GET")

	h.registerAuthRoutes(r)
}

// mountResource wires the five CRUD routes of one entity onto its service.
func (h *Handler) mountResource(r *mux.Router, path string, svc service.ResourceServiceInterface, name string, g guards) {
	guard := func(protected bool, fn http.HandlerFunc) http.HandlerFunc {
		if protected {
			return h.RequireAuth(fn)
		}
		return fn
	}

	r.HandleFunc(path, h.list(svc, name)).Methods("GET")
	r.HandleFunc(path+"/{id}", h.get(svc, name)).Methods("GET")
	r.HandleFunc(path, guard(g.create, h.create(svc, name))).Methods("POST")
	r.HandleFunc(path+"/{id}", guard(g.update, h.update(svc, name))).Methods("PUT")
	r.HandleFunc(path+"/{id}", guard(g.delete, h.delete(svc, name))).Methods("DELETE")
}

func (h *Handler) list(svc service.ResourceServiceInterface, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := svc.List(r.Context())
		if err != nil {
			h.serviceError(w, err, name, "fetch", name+"s")
			return
		}
		writeJSON(w, http.StatusOK, docs)
	}
}

func (h *Handler) get(svc service.ResourceServiceInterface, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			h.serviceError(w, err, name, "fetch", name)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func (h *Handler) create(svc service.ResourceServiceInterface, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodePayload(w, r)
		if !ok {
			return
		}
		doc, err := svc.Create(r.Context(), payload)
		if err != nil {
			h.serviceError(w, err, name, "create", name)
			return
		}
		writeJSON(w, http.StatusCreated, doc)
	}
}

func (h *Handler) update(svc service.ResourceServiceInterface, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodePayload(w, r)
		if !ok {
			return
		}
		if err := svc.Update(r.Context(), mux.Vars(r)["id"], payload); err != nil {
			h.serviceError(w, err, name, "update", name)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) delete(svc service.ResourceServiceInterface, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
			h.serviceError(w, err, name, "delete", name)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Orders.Get(r.Context(), id); err != nil {
		h.serviceError(w, err, "order", "fetch", "order")
		return
	}

	png, err := qrcode.Encode(h.PublicBaseURL+"/orders/"+id, qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("API running"))
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "restaurant-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// serviceError maps service failures to HTTP statuses. verb and plural feed
// the generic 500 message ("Failed to fetch restaurants.").
func (h *Handler) serviceError(w http.ResponseWriter, err error, name, verb, subject string) {
	if ve, ok := service.AsValidation(err); ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": ve.Errors})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid id.")
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, capitalize(name)+" not found.")
	case errors.Is(err, service.ErrUnknownRestaurant):
		writeError(w, http.StatusBadRequest, "restaurantId does not match an existing restaurant.")
	default:
		log.Printf("%s %s: %v", verb, name, err)
		writeError(w, http.StatusInternalServerError, "Failed to "+verb+" "+subject+".")
	}
}

func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload.")
		return nil, false
	}
	return payload, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
