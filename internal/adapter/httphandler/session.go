package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// GET /v1/session, POST /v1/session (login), DELETE /v1/session (logout)
// POST /v1/users (register), PATCH /v1/profile

type SessionHandler struct {
	session port.SessionOperator
}

func RegisterSession(mux *http.ServeMux, session port.SessionOperator) {
	h := SessionHandler{session}
	mux.HandleFunc("GET /v1/session", h.GetSession)
	mux.HandleFunc("POST /v1/session", h.Login)
	mux.HandleFunc("DELETE /v1/session", h.Logout)
	mux.HandleFunc("POST /v1/users", h.Register)
	mux.HandleFunc("PATCH /v1/profile", h.UpdateProfile)
}

func (h SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	u, ok := h.session.Current()
	if !ok {
		http.Error(w, domain.ErrNoSession.Error(), http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

func (h SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.session.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		log.Warn("login rejected", "email", req.Email)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))

	log.Info("session established", "user", u.ID)
}

func (h SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "SessionHandler.Register"
	log := slog.With("op", op)

	var req RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.session.Register(domain.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Country:  req.Country,
		Phone:    req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))

	log.Info("account fabricated", "user", u.ID)
}

func (h SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfilePatchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.session.UpdateProfile(domain.ProfilePatch{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
		Phone:   req.Phone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}
