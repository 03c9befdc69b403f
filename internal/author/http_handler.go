package author

import (
	"errors"
	"net/http"
	"strconv"

	"locallibrary/internal/auth"
	"locallibrary/internal/httpx"
)

const listPageSize = 20

type HTTPHandler struct {
	service *Service
	guard   auth.Authorizer
}

func NewHTTPHandler(service *Service, guard auth.Authorizer) *HTTPHandler {
	return &HTTPHandler{service: service, guard: guard}
}

func detailPath(id int64) string {
	return "/catalog/authors/" + strconv.FormatInt(id, 10)
}

// writeLookupError maps a service error for the author identified in the path.
func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, r, "Author not found")
		return
	}
	httpx.InternalError(w, r)
}

// List handles GET /catalog/authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/authors [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page := httpx.ParsePage(r, listPageSize)

	authors, total, err := h.service.List(r.Context(), page.Limit(), page.Offset())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if authors == nil {
		authors = []Author{}
	}
	httpx.JSONSuccess(w, r, authors, page.Meta(total))
}

// Detail handles GET /catalog/authors/{id}
// @Summary Get author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/authors/{id} [get]
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Author not found")
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// CreateForm handles GET /catalog/author/create
// @Summary Blank author form
// @Tags authors
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/author/create [get]
func (h *HTTPHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"form": Form{}}, map[string]any{"date_format": "MM-DD-YYYY"})
}

// Create handles POST /catalog/author/create
// @Summary Create author
// @Tags authors
// @Accept json
// @Security Bearer
// @Param request body Form true "Author"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/author/create [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}

	var form Form
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	fields, details := form.Parse()
	if len(details) > 0 {
		httpx.FormError(w, r, form, details)
		return
	}

	if _, err := h.service.Create(r.Context(), auth.IdentityFrom(r).UserID, fields); err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.Redirect(w, r, "/catalog/authors")
}

// UpdateForm handles GET /catalog/author/{id}/update
// @Summary Author form pre-filled for editing
// @Tags authors
// @Security Bearer
// @Param id path int true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/author/{id}/update [get]
func (h *HTTPHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Author not found")
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"author": a, "form": FormFrom(a)}, map[string]any{"date_format": "MM-DD-YYYY"})
}

// Update handles POST /catalog/author/{id}/update
// @Summary Update author
// @Tags authors
// @Accept json
// @Security Bearer
// @Param id path int true "Author ID"
// @Param request body Form true "Author"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/author/{id}/update [post]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Author not found")
		return
	}

	var form Form
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	fields, details := form.Parse()
	if len(details) > 0 {
		httpx.FormError(w, r, form, details)
		return
	}

	if _, err := h.service.Update(r.Context(), id, fields); err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.Redirect(w, r, detailPath(id))
}

// DeleteConfirm handles GET /catalog/author/{id}/delete
// @Summary Author delete confirmation
// @Tags authors
// @Security Bearer
// @Param id path int true "Author ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/author/{id}/delete [get]
func (h *HTTPHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Author not found")
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, a, nil)
}

// Delete handles POST /catalog/author/{id}/delete
// @Summary Delete author
// @Description Books by the author are kept with no author
// @Tags authors
// @Security Bearer
// @Param id path int true "Author ID"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/author/{id}/delete [post]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Author not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.Redirect(w, r, "/catalog/authors")
}
