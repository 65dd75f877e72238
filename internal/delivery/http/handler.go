// Package http implements the request handler layer: it parses input,
// invokes exactly one service operation per request and shapes the
// JSON response. It is the only place that translates store failures
// into external status codes.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/trufaria/storefront-backend/internal/entity"
	"github.com/trufaria/storefront-backend/internal/service"
	"github.com/trufaria/storefront-backend/internal/store"
	"github.com/trufaria/storefront-backend/internal/validate"
)

// Handler handles HTTP requests for the storefront.
type Handler struct {
	svc *service.Storefront
}

func NewHandler(svc *service.Storefront) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /produtos", h.handleListProducts)
	mux.HandleFunc("PATCH /produtos/{id}", h.handleSetProductActive)
	mux.HandleFunc("POST /pedidos", h.handleCreateOrder)
	mux.HandleFunc("GET /pedidos", h.handleListOrders)
	mux.HandleFunc("DELETE /pedidos/{id}", h.handleDeleteOrder)
	mux.HandleFunc("DELETE /pedidos", h.handleClearOrders)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("POST /register", h.handleRegister)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"message": msg})
}

// respondError maps a store failure onto an external status. The
// not-found and invalid-input messages vary per operation; the rest
// are fixed. Anything unrecognized is an internal fault: logged for
// operators, generic message to the caller.
func respondError(w http.ResponseWriter, err error, notFoundMsg, invalidMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, invalidMsg)
	case errors.Is(err, store.ErrConflict):
		writeMessage(w, http.StatusConflict, "Usuário ou e-mail já cadastrado!")
	case errors.Is(err, store.ErrAuthFailed):
		writeMessage(w, http.StatusUnauthorized, "Usuário ou senha incorretos!")
	default:
		slog.Error("Unhandled storefront error", "err", err)
		writeMessage(w, http.StatusInternalServerError, "Erro interno no servidor.")
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("ativos") == "true"
	writeJSON(w, http.StatusOK, h.svc.ListProducts(r.Context(), activeOnly))
}

func (h *Handler) handleSetProductActive(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ID(r.PathValue("id"))
	if err != nil {
		// A non-numeric id matches no product, so it reports the same
		// way an unknown id does.
		writeMessage(w, http.StatusNotFound, "Produto não encontrado!")
		return
	}

	// The body is optional: {"ativo": bool} sets the flag, an absent
	// body or field toggles it.
	var body struct {
		Active *bool `json:"ativo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		writeMessage(w, http.StatusBadRequest, "Requisição inválida!")
		return
	}

	p, err := h.svc.SetProductActive(r.Context(), id, body.Active)
	if err != nil {
		respondError(w, err, "Produto não encontrado!", "Requisição inválida!")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Produto atualizado com sucesso!",
		"produto": p,
	})
}

type createOrderRequest struct {
	Items    []entity.OrderItem `json:"produtos"`
	Customer string             `json:"nome"`
	Phone    string             `json:"telefone"`
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Pedido inválido!")
		return
	}

	o, err := h.svc.PlaceOrder(r.Context(), req.Items, req.Customer, req.Phone)
	if err != nil {
		respondError(w, err, "Pedido não encontrado!", "Pedido inválido!")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Pedido salvo com sucesso!",
		"pedido":  o,
	})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"pedidos": h.svc.ListOrders(r.Context()),
	})
}

func (h *Handler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := validate.ID(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Pedido não encontrado!")
		return
	}

	o, err := h.svc.RemoveOrder(r.Context(), id)
	if err != nil {
		respondError(w, err, "Pedido não encontrado!", "Pedido inválido!")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Pedido removido com sucesso!",
		"pedido":  o,
	})
}

func (h *Handler) handleClearOrders(w http.ResponseWriter, r *http.Request) {
	n := h.svc.ClearOrders(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Todos os pedidos foram removidos!",
		"removidos": n,
	})
}

type loginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Requisição inválida!")
		return
	}
	if req.Name == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Preencha todos os campos obrigatórios!")
		return
	}

	acc, err := h.svc.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		respondError(w, err, "Usuário não encontrado!", "Requisição inválida!")
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

type registerRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"telephone"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Requisição inválida!")
		return
	}
	if req.Name == "" || req.Password == "" || req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Preencha todos os campos obrigatórios!")
		return
	}

	acc, err := h.svc.Register(r.Context(), req.Name, req.Password, req.Email, req.FullName, req.Phone)
	if err != nil {
		// The only invalid-input path left after the presence check is
		// the weak email rule.
		respondError(w, err, "Usuário não encontrado!", "E-mail inválido!")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Usuário registrado com sucesso!",
		"usuario": acc,
	})
}
