package middleware

import (
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	"dealsmarket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EdgeGate applies the coarse navigational access policy to page requests and answers
// rejected requests with a 303 redirect. It must run after SessionMiddleware.
type EdgeGate struct {
	accessUC usecase.AccessUsecase
}

// NewEdgeGate is the constructor for EdgeGate.
func NewEdgeGate(accessUC usecase.AccessUsecase) *EdgeGate {
	return &EdgeGate{accessUC: accessUC}
}

// Process evaluates the gate for every non-API request.
func (g *EdgeGate) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if isAPIPath(req.URL.Path) || req.URL.Path == "/health" {
			return next(c)
		}

		decision := g.accessUC.EvaluateEdge(req.Context(), req.Method, req.URL.RequestURI(), deliverycontext.GetIdentity(c))
		if !decision.Allowed {
			return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		}

		return next(c)
	}
}
