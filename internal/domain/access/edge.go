package access

import (
	"net/http"

	"dealsmarket/internal/domain/entity"
)

// EdgeInput is everything the edge gate needs to decide on one request.
type EdgeInput struct {
	Method string
	Path   string
	// ReturnTo is where login sends the user back to, path plus query. Path is used when empty.
	ReturnTo      string
	Authenticated bool
	// Access is nil when the profile lookup failed or returned no row.
	Access *entity.AccessProfile
}

func (in EdgeInput) returnTo() string {
	if in.ReturnTo != "" {
		return in.ReturnTo
	}

	return in.Path
}

// IsNavigational reports whether the method is a page navigation the gate inspects.
func IsNavigational(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// NeedsProfile reports whether EvaluateEdge would consult the access profile for this request,
// so callers can skip the store lookup for anonymous or public traffic.
func NeedsProfile(method, path string, authenticated bool) bool {
	if !authenticated || !IsNavigational(method) {
		return false
	}

	class := ClassifyRoute(path)

	return path == PathHome || class != RoutePublic
}

// EvaluateEdge applies the coarse route policy. It never checks retailer approval status
// below /retailer; page guards own that decision.
func EvaluateEdge(in EdgeInput) Decision {
	if !IsNavigational(in.Method) {
		return Allow()
	}

	class := ClassifyRoute(in.Path)

	if in.Authenticated && (in.Path == PathHome || class == RouteAuth) && in.Access != nil {
		switch in.Access.Role {
		case entity.RoleRetailer:
			if in.Access.RetailerStatus == entity.RetailerStatusApproved {
				return Redirect(PathRetailerDash, "signed-in approved retailer on landing page")
			}

			return Redirect(PathRetailerPending, "signed-in retailer awaiting approval on landing page")
		case entity.RoleConsumer:
			if class == RouteAuth {
				return Redirect(PathHome, "signed-in consumer on auth page")
			}
		}
	}

	switch class {
	case RouteRetailer:
		if !in.Authenticated {
			return Redirect(LoginWithReturn(in.returnTo()), "unauthenticated retailer route")
		}
		if in.Access == nil {
			return Redirect(PathHomeUnauthorized, "no profile for retailer route")
		}
		if in.Access.Role == entity.RoleRetailer {
			return Allow()
		}
		// Consumers reach the application form before they hold the retailer role.
		if in.Access.Role == entity.RoleConsumer && in.Path == PathRetailerApply {
			return Allow()
		}

		return Redirect(PathHomeUnauthorized, "non-retailer on retailer route")

	case RouteConsumerProtected:
		if !in.Authenticated {
			return Redirect(LoginWithReturn(in.returnTo()), "unauthenticated protected route")
		}
		if in.Access == nil {
			return Redirect(PathHome, "no profile for protected route")
		}
		if in.Access.Role == entity.RoleRetailer {
			return Redirect(PathRetailerDash, "retailer on consumer route")
		}

		return Allow()
	}

	return Allow()
}
