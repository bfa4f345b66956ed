package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/internal/domain"
	"tableside/internal/service"
)

type Handler struct {
	Orders     service.OrderServiceInterface
	Layout     service.LayoutServiceInterface
	Aggregator service.AggregatorServiceInterface
	Tables     service.TableServiceInterface
	Board      service.OccupancyCache
}

func NewHandler(orders service.OrderServiceInterface, layout service.LayoutServiceInterface,
	aggregator service.AggregatorServiceInterface, tables service.TableServiceInterface,
	board service.OccupancyCache) *Handler {
	return &Handler{
		Orders:     orders,
		Layout:     layout,
		Aggregator: aggregator,
		Tables:     tables,
		Board:      board,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/bill", h.getOrderBill).Methods("GET")

	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables/{id}/qrcode", h.getTableQRCode).Methods("GET")

	r.HandleFunc("/api/floorplans/{planId}/size", h.resizeFloorPlan).Methods("PUT")
	r.HandleFunc("/api/floorplans/{planId}/tables", h.addTable).Methods("POST")
	r.HandleFunc("/api/floorplans/{planId}/tables/{tableId}/move", h.moveTable).Methods("POST")
	r.HandleFunc("/api/floorplans/{planId}/tables/{tableId}/position", h.repositionTable).Methods("PUT")
	r.HandleFunc("/api/floorplans/{planId}/tables/{tableId}/size", h.resizeTable).Methods("PUT")
	r.HandleFunc("/api/floorplans/{planId}/tables/{tableId}", h.removeTable).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{id}/tables/with-orders", h.listTablesWithOrders).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/stats", h.getStats).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/occupancy", h.getOccupancyBoard).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "tableside",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TableID int                `json:"table_id"`
		Items   []domain.OrderLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), payload.TableID, payload.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Advance(r.Context(), id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderBill(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	bill, err := h.Orders.Bill(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var table domain.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Tables.Create(&table); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Tables.QRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(qr) == 0 {
		http.Error(w, "QR code not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) resizeFloorPlan(w http.ResponseWriter, r *http.Request) {
	planID, _ := strconv.Atoi(mux.Vars(r)["planId"])
	var payload struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.Layout.ResizeFloorPlan(planID, payload.Width, payload.Height)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) addTable(w http.ResponseWriter, r *http.Request) {
	planID, _ := strconv.Atoi(mux.Vars(r)["planId"])
	var placement domain.TablePlacement
	if err := json.NewDecoder(r.Body).Decode(&placement); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.Layout.AddTable(planID, placement)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) moveTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, _ := strconv.Atoi(vars["planId"])
	tableID, _ := strconv.Atoi(vars["tableId"])
	var payload struct {
		Direction string `json:"direction"`
		Step      int    `json:"step"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	placement, err := h.Layout.Move(planID, tableID, payload.Direction, payload.Step)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placement)
}

func (h *Handler) repositionTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, _ := strconv.Atoi(vars["planId"])
	tableID, _ := strconv.Atoi(vars["tableId"])
	var payload struct {
		X int `json:"x_position"`
		Y int `json:"y_position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	placement, err := h.Layout.Reposition(planID, tableID, payload.X, payload.Y)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placement)
}

func (h *Handler) resizeTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, _ := strconv.Atoi(vars["planId"])
	tableID, _ := strconv.Atoi(vars["tableId"])
	var payload struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	placement, err := h.Layout.Resize(planID, tableID, payload.Width, payload.Height)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, placement)
}

func (h *Handler) removeTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, _ := strconv.Atoi(vars["planId"])
	tableID, _ := strconv.Atoi(vars["tableId"])

	if err := h.Layout.RemoveTable(planID, tableID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTablesWithOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var floorNumber *int
	if raw := r.URL.Query().Get("floor"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid floor number", http.StatusBadRequest)
			return
		}
		floorNumber = &floor
	}

	views, err := h.Aggregator.ListTablesWithOrders(restaurantID, floorNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])
	stats, err := h.Aggregator.ComputeStats(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getOccupancyBoard(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])
	board, err := h.Board.Board(r.Context(), restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// JSON object keys are strings; stringify the table ids.
	response := make(map[string]domain.OccupancyLabel, len(board))
	for tableID, label := range board {
		response[strconv.Itoa(tableID)] = label
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the core's typed errors onto HTTP statuses. Position
// errors carry their violation list in the body.
func writeError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var transition *domain.InvalidTransitionError
	var position *domain.PositionError
	var invariant *domain.InvariantViolationError

	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &conflict):
		http.Error(w, conflict.Error(), http.StatusConflict)
	case errors.As(err, &transition):
		http.Error(w, transition.Error(), http.StatusConflict)
	case errors.As(err, &position):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":      position.Error(),
			"violations": position.Violations,
		})
	case errors.As(err, &invariant):
		http.Error(w, invariant.Error(), http.StatusInternalServerError)
	case errors.Is(err, sql.ErrNoRows):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
