package home

import (
	"net/http"

	"locallibrary/internal/httpx"
	"locallibrary/internal/session"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Index handles GET /catalog/
// @Summary Library home
// @Description Catalogue counts and the number of previous visits in this session
// @Tags catalog
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/ [get]
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	idx, err := h.service.Index(r.Context(), session.IDFrom(r))
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, idx, nil)
}
