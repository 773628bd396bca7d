package access

import "dealsmarket/internal/domain/entity"

// Page identifies a server-rendered page in the retailer area.
type Page int

const (
	PageApply Page = iota
	PagePending
	PageRejected
	PageDashboard
)

// Path returns the canonical path of the page.
func (p Page) Path() string {
	switch p {
	case PagePending:
		return PathRetailerPending
	case PageRejected:
		return PathRetailerRejected
	case PageDashboard:
		return PathRetailerDash
	default:
		return PathRetailerApply
	}
}

func pageForStatus(status entity.RetailerStatus) Page {
	switch status {
	case entity.RetailerStatusApproved:
		return PageDashboard
	case entity.RetailerStatusRejected:
		return PageRejected
	default:
		return PagePending
	}
}

// GuardInput is the freshly re-derived state a page guard decides on.
// Access must already be reconciled, so a missing RetailerID really means no application.
type GuardInput struct {
	Authenticated bool
	Access        *entity.AccessProfile
}

// EvaluatePage applies the retailer-area decision table for page.
// An allowed PageApply with no retailer means the application form should be shown.
func EvaluatePage(page Page, in GuardInput) Decision {
	if !in.Authenticated || in.Access == nil {
		return Redirect(PathLogin, "no authenticated user")
	}

	switch in.Access.Role {
	case entity.RoleRetailer:
	case entity.RoleConsumer:
		if page != PageApply {
			return Redirect(PathLoginUnauthorized, "consumer on retailer page")
		}
	default:
		return Redirect(PathLoginUnauthorized, "role cannot use retailer pages")
	}

	if !in.Access.HasRetailer() {
		if page == PageApply {
			return Allow()
		}

		return Redirect(PathRetailerApply, "no retailer application")
	}

	target := pageForStatus(in.Access.RetailerStatus)
	if target == page {
		return Allow()
	}

	return Redirect(target.Path(), "retailer status is "+string(in.Access.RetailerStatus))
}
