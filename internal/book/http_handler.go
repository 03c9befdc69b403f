package book

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"locallibrary/internal/auth"
	"locallibrary/internal/httpx"
	"locallibrary/internal/platform/openlibrary"
)

const listPageSize = 20

type HTTPHandler struct {
	service *Service
	guard   auth.Authorizer
}

func NewHTTPHandler(service *Service, guard auth.Authorizer) *HTTPHandler {
	return &HTTPHandler{service: service, guard: guard}
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, r, "Book not found")
		return
	}
	httpx.InternalError(w, r)
}

// writeSaveError re-presents the form when the store rejected a field.
func writeSaveError(w http.ResponseWriter, r *http.Request, form Form, err error) {
	if detail, ok := fieldError(err, form); ok {
		httpx.FormError(w, r, form, []httpx.ErrorDetail{detail})
		return
	}
	writeLookupError(w, r, err)
}

func queryInt64(r *http.Request, name string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// List handles GET /catalog/books
// @Summary List books
// @Tags books
// @Produce json
// @Param page query int false "Page number"
// @Param author_id query int false "Filter by author"
// @Param genre_id query int false "Filter by genre"
// @Param q query string false "Title or ISBN contains"
// @Success 200 {object} httpx.SuccessResponse
// @Router /catalog/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page := httpx.ParsePage(r, listPageSize)
	params := Query{
		AuthorID: queryInt64(r, "author_id"),
		GenreID:  queryInt64(r, "genre_id"),
		Q:        r.URL.Query().Get("q"),
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	}

	books, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSONSuccess(w, r, books, page.Meta(total))
}

// Detail handles GET /catalog/books/{id}
// @Summary Get book
// @Description Book with genres and copies
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/books/{id} [get]
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Book not found")
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// CreateForm handles GET /catalog/book/create
// @Summary Blank book form
// @Tags books
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/book/create [get]
func (h *HTTPHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"form": Form{GenreIDs: []int64{}}}, nil)
}

// Create handles POST /catalog/book/create
// @Summary Create book
// @Tags books
// @Accept json
// @Security Bearer
// @Param request body Form true "Book"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/book/create [post]
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
		writeSaveError(w, r, form, err)
		return
	}
	httpx.Redirect(w, r, "/catalog/books")
}

// UpdateForm handles GET /catalog/book/{id}/update
// @Summary Book form pre-filled for editing
// @Tags books
// @Security Bearer
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/update [get]
func (h *HTTPHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Book not found")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"book": b, "form": FormFrom(b)}, nil)
}

// Update handles POST /catalog/book/{id}/update
// @Summary Update book
// @Tags books
// @Accept json
// @Security Bearer
// @Param id path int true "Book ID"
// @Param request body Form true "Book"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/update [post]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Book not found")
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
		writeSaveError(w, r, form, err)
		return
	}
	httpx.Redirect(w, r, "/catalog/books/"+strconv.FormatInt(id, 10))
}

// DeleteConfirm handles GET /catalog/book/{id}/delete
// @Summary Book delete confirmation
// @Tags books
// @Security Bearer
// @Param id path int true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/delete [get]
func (h *HTTPHandler) DeleteConfirm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Book not found")
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	// Copies are listed because deleting the book removes them too.
	httpx.JSONSuccess(w, r, detail, nil)
}

// Delete handles POST /catalog/book/{id}/delete
// @Summary Delete book
// @Tags books
// @Security Bearer
// @Param id path int true "Book ID"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/delete [post]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	id, ok := httpx.PathInt64(r, "id")
	if !ok {
		httpx.NotFound(w, r, "Book not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.Redirect(w, r, "/catalog/books")
}

// LookupISBN handles GET /catalog/isbn/{isbn}
// @Summary Prefill a book from Open Library
// @Tags books
// @Security Bearer
// @Param isbn path string true "ISBN-10 or ISBN-13"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /catalog/isbn/{isbn} [get]
func (h *HTTPHandler) LookupISBN(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}

	isbn := httpx.NormalizeISBN(strings.TrimSpace(r.PathValue("isbn")))
	if details := httpx.ValidateStruct(struct {
		ISBN string `json:"isbn" validate:"required,isbn"`
	}{ISBN: isbn}); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	md, err := h.service.Lookup(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, openlibrary.ErrNotFound) {
			httpx.NotFound(w, r, "ISBN not found")
			return
		}
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Open Library lookup failed", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"metadata": md,
		"form":     Form{Title: md.Title, Summary: md.Summary, ISBN: isbn, GenreIDs: []int64{}},
	}, nil)
}
