// Package access holds the pure authorization decisions shared by the edge gate and the
// page-level guards. Nothing here performs I/O: callers resolve the session and the
// AccessProfile first and pass them in.
//
// Layer ownership:
//   - The edge gate owns authentication redirects, the coarse role split between the
//     retailer subtree and consumer-protected routes, and bouncing signed-in users away
//     from the landing and auth pages.
//   - Page guards own retailer approval status. The edge gate never inspects status for
//     /retailer/* paths; removing a guard is therefore never covered by the gate.
package access

import (
	"net/url"
	"strings"

	"dealsmarket/internal/domain/entity"
)

// Canonical redirect targets.
const (
	PathHome             = "/"
	PathLogin            = "/auth/login"
	PathSignup           = "/auth/signup"
	PathRetailerRoot     = "/retailer"
	PathRetailerApply    = "/retailer/apply"
	PathRetailerPending  = "/retailer/pending"
	PathRetailerRejected = "/retailer/rejected"
	PathRetailerDash     = "/retailer/dashboard"

	PathLoginUnauthorized = "/auth/login?error=unauthorized"
	PathHomeUnauthorized  = "/?error=unauthorized"
)

// consumerProtectedRoots are only reachable by signed-in non-retailer users.
var consumerProtectedRoots = []string{"/watchlist", "/alerts", "/profile"}

// RouteClass is the coarse category of a navigational path.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteAuth
	RouteRetailer
	RouteConsumerProtected
)

func (c RouteClass) String() string {
	switch c {
	case RouteAuth:
		return "auth"
	case RouteRetailer:
		return "retailer"
	case RouteConsumerProtected:
		return "consumer-protected"
	default:
		return "public"
	}
}

// ClassifyRoute maps a request path to its route class. Matching is per path segment,
// so "/retailers" is public while "/retailer" and "/retailer/x" are retailer routes.
func ClassifyRoute(path string) RouteClass {
	switch {
	case underRoot(path, "/auth"):
		return RouteAuth
	case underRoot(path, PathRetailerRoot):
		return RouteRetailer
	}

	for _, root := range consumerProtectedRoots {
		if underRoot(path, root) {
			return RouteConsumerProtected
		}
	}

	return RoutePublic
}

func underRoot(path, root string) bool {
	return path == root || strings.HasPrefix(path, root+"/")
}

// LoginWithReturn builds the login redirect that brings the user back to target (path and query) afterwards.
func LoginWithReturn(target string) string {
	return PathLogin + "?" + url.Values{"returnUrl": {target}}.Encode()
}

// StatusLanding returns the canonical retailer page for an approval status.
func StatusLanding(status entity.RetailerStatus) string {
	switch status {
	case entity.RetailerStatusApproved:
		return PathRetailerDash
	case entity.RetailerStatusRejected:
		return PathRetailerRejected
	case entity.RetailerStatusPending:
		return PathRetailerPending
	default:
		return PathRetailerApply
	}
}
