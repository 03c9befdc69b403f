package bookinstance

import (
	"errors"
	"net/http"

	"cloud.google.com/go/civil"

	"locallibrary/internal/auth"
	"locallibrary/internal/httpx"
)

const (
	borrowedPageSize = 20
	myBooksPageSize  = 10
)

type HTTPHandler struct {
	service *Service
	guard   auth.Authorizer
}

func NewHTTPHandler(service *Service, guard auth.Authorizer) *HTTPHandler {
	return &HTTPHandler{service: service, guard: guard}
}

type instanceView struct {
	BookInstance
	StatusLabel string `json:"status_label"`
	IsOverdue   bool   `json:"is_overdue"`
}

func views(items []BookInstance, today civil.Date) []instanceView {
	out := make([]instanceView, 0, len(items))
	for _, bi := range items {
		out = append(out, instanceView{BookInstance: bi, StatusLabel: bi.Status.Label(), IsOverdue: bi.IsOverdue(today)})
	}
	return out
}

func writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		httpx.NotFound(w, r, "Book instance not found")
		return
	}
	httpx.InternalError(w, r)
}

// Detail handles GET /catalog/bookinstances/{id}
// @Summary Get book copy
// @Tags bookinstances
// @Produce json
// @Param id path string true "Book instance ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/bookinstances/{id} [get]
func (h *HTTPHandler) Detail(w http.ResponseWriter, r *http.Request) {
	bi, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, views([]BookInstance{bi}, h.service.Today())[0], nil)
}

// RenewForm handles GET /catalog/book/{id}/renew
// @Summary Renewal form
// @Description Shows the copy with a due date proposed three weeks ahead
// @Tags bookinstances
// @Security Bearer
// @Param id path string true "Book instance ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/renew [get]
func (h *HTTPHandler) RenewForm(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}

	view, err := h.service.RenewalForm(r.Context(), r.PathValue("id"))
	if err != nil {
		writeLookupError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{
		"book_instance": view.Instance,
		"form":          RenewalForm{DueBack: view.ProposedDate.String()},
		"max_due_back":  view.MaxDate,
	}, nil)
}

// Renew handles POST /catalog/book/{id}/renew
// @Summary Renew a loan
// @Description Sets a new due date between today and four weeks ahead
// @Tags bookinstances
// @Accept json
// @Security Bearer
// @Param id path string true "Book instance ID"
// @Param request body RenewalForm true "New due date"
// @Success 303 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /catalog/book/{id}/renew [post]
func (h *HTTPHandler) Renew(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}

	var form RenewalForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	_, err := h.service.Renew(r.Context(), r.PathValue("id"), form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httpx.FormError(w, r, form, []httpx.ErrorDetail{{
				Field:   verr.Field,
				Message: verr.Message(),
				Value:   verr.Value,
			}})
			return
		}
		writeLookupError(w, r, err)
		return
	}
	httpx.Redirect(w, r, "/catalog/borrowed")
}

// Borrowed handles GET /catalog/borrowed
// @Summary All borrowed copies
// @Description Copies on loan, soonest due first
// @Tags bookinstances
// @Security Bearer
// @Param page query int false "Page number"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /catalog/borrowed [get]
func (h *HTTPHandler) Borrowed(w http.ResponseWriter, r *http.Request) {
	if !auth.Authorize(w, r, h.guard, auth.PermCanMarkReturned) {
		return
	}
	page := httpx.ParsePage(r, borrowedPageSize)

	items, total, err := h.service.ListBorrowed(r.Context(), page.Limit(), page.Offset())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, views(items, h.service.Today()), page.Meta(total))
}

// MyBooks handles GET /catalog/mybooks
// @Summary Copies on loan to the current user
// @Tags bookinstances
// @Security Bearer
// @Param page query int false "Page number"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /catalog/mybooks [get]
func (h *HTTPHandler) MyBooks(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFrom(r)
	if err := auth.RequireLogin(id); err != nil {
		httpx.Unauthorized(w, r)
		return
	}
	page := httpx.ParsePage(r, myBooksPageSize)

	items, total, err := h.service.ListLoanedBy(r.Context(), id.UserID, page.Limit(), page.Offset())
	if err != nil {
		httpx.InternalError(w, r)
		return
	}
	httpx.JSONSuccess(w, r, views(items, h.service.Today()), page.Meta(total))
}
