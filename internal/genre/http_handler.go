package genre

import (
	"errors"
	"net/http"

	"locallibrary/internal/httpx"
)

const listPageSize = 20

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /catalog/genres
// @Summary List genres
// @Tags genres
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/genres [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page := httpx.ParsePage(r, listPageSize)

	genres, total, err := h.service.List(r.Context(), page.Limit(), page.Offset())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if genres == nil {
		genres = []Genre{}
	}
	httpx.JSONSuccess(w, r, genres, page.Meta(total))
}

// Detail handles GET /catalog/genres/{id}
// @Summary Get genre
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/genres/{id} [get]
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Genre not found")
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.NotFound(w, r, "Genre not found")
			return
		}
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}
