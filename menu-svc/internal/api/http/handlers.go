package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"overcooked-menu/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menus  service.MenuServiceInterface
	Logger *slog.Logger
}

func NewHandler(menus service.MenuServiceInterface, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Menus: menus, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/menu/locations", h.getLocations).Methods("GET")
	r.HandleFunc("/api/menu/food-properties", h.getFoodProperties).Methods("GET")
	r.HandleFunc("/api/menu/monthly-view/{location}/{menuType}/{year}/{month}", h.getMonthlyView).Methods("GET")
	r.HandleFunc("/api/menu/daily-menu/{location}/{menuType}/{year}/{month}/{day}", h.getDailyMenu).Methods("GET")
	r.HandleFunc("/api/menu/latest-item-version/{hash}", h.getLatestItemVersion).Methods("GET")
	r.HandleFunc("/api/menu/latest-item-version/{hash}/qrcode", h.getItemQRCode).Methods("GET")
}

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menus.Locations())
}

func (h *Handler) getFoodProperties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menus.FoodProperties())
}

func (h *Handler) getMonthlyView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	numbers, ok := parseInts(vars, "year", "month")
	if !ok {
		http.Error(w, "year and month must be numbers", http.StatusBadRequest)
		return
	}

	view, err := h.Menus.GetMonthlyView(r.Context(), numbers[0], numbers[1], vars["location"], vars["menuType"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) getDailyMenu(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	numbers, ok := parseInts(vars, "year", "month", "day")
	if !ok {
		http.Error(w, "year, month and day must be numbers", http.StatusBadRequest)
		return
	}
	date := fmt.Sprintf("%04d-%02d-%02d", numbers[0], numbers[1], numbers[2])

	menu, err := h.Menus.GetMenu(r.Context(), date, vars["location"], vars["menuType"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getLatestItemVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.Menus.GetLatestVersion(r.Context(), mux.Vars(r)["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, version)
}

func (h *Handler) getItemQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Menus.ItemQRCode(r.Context(), mux.Vars(r)["hash"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrStoreUnavailable):
		h.Logger.Error("store unavailable", "path", r.URL.Path, "error", err)
		http.Error(w, "menu data temporarily unavailable", http.StatusServiceUnavailable)
	default:
		h.Logger.Error("request failed", "path", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseInts(vars map[string]string, names ...string) ([]int, bool) {
	out := make([]int, len(names))
	for i, name := range names {
		n, err := strconv.Atoi(vars[name])
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
