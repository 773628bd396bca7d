package handler

import (
	"strconv"

	"dealsmarket/internal/delivery/http/response"
	"dealsmarket/internal/delivery/http/validator"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the struct validation.
// On failure it has already written the 400 response and returns false.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, validator.FieldErrors(err))
	}

	return true, nil
}

// pagination reads ?page and ?pageSize. Missing or malformed values fall back to zero,
// which the usecases replace with the configured defaults.
func pagination(c echo.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	pageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))

	return page, pageSize
}

func dealPageResponse(page *usecase.DealPage) response.Paged[*DealResponse] {
	return response.Paged[*DealResponse]{
		Items: toDealResponses(page.Items),
		Pagination: response.PageMeta{
			Page:     page.Page,
			PageSize: page.PageSize,
			Total:    page.Total,
		},
	}
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}
