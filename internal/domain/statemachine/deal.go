package statemachine

import "dealsmarket/internal/domain/entity"

// DealTransition is one allowed deal status change.
type DealTransition struct {
	From  entity.DealStatus
	To    entity.DealStatus
	Actor Actor
}

// dealTransitions is the authoritative deal approval lifecycle. Any retailer edit sends the
// deal back to review, including edits of a deal that is already pending.
var dealTransitions = []DealTransition{
	{From: entity.DealStatusPending, To: entity.DealStatusApproved, Actor: ActorAdmin},
	{From: entity.DealStatusPending, To: entity.DealStatusRejected, Actor: ActorAdmin},
	{From: entity.DealStatusApproved, To: entity.DealStatusRejected, Actor: ActorAdmin},
	{From: entity.DealStatusRejected, To: entity.DealStatusApproved, Actor: ActorAdmin},

	{From: entity.DealStatusPending, To: entity.DealStatusPending, Actor: ActorRetailer},
	{From: entity.DealStatusApproved, To: entity.DealStatusPending, Actor: ActorRetailer},
	{From: entity.DealStatusRejected, To: entity.DealStatusPending, Actor: ActorRetailer},
}

type dealKey struct {
	from  entity.DealStatus
	to    entity.DealStatus
	actor Actor
}

var dealTransitionMap = func() map[dealKey]bool {
	m := make(map[dealKey]bool, len(dealTransitions))
	for _, t := range dealTransitions {
		m[dealKey{t.From, t.To, t.Actor}] = true
	}

	return m
}()

// DealTransitionsFrom returns the distinct statuses reachable from status.
func DealTransitionsFrom(status entity.DealStatus) []entity.DealStatus {
	var next []entity.DealStatus
	seen := make(map[entity.DealStatus]bool)
	for _, t := range dealTransitions {
		if t.From == status && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}

	return next
}

// CanTransitionDeal reports whether actor may move a deal from one status to another.
func CanTransitionDeal(from, to entity.DealStatus, actor Actor) error {
	if dealTransitionMap[dealKey{from, to, actor}] {
		return nil
	}

	next := DealTransitionsFrom(from)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}

	return &TransitionError{
		Entity:  "deal",
		From:    string(from),
		To:      string(to),
		Actor:   actor,
		Allowed: names,
	}
}

// StatusAfterEdit is the status a deal takes when its owner saves changes.
func StatusAfterEdit(entity.DealStatus) entity.DealStatus {
	return entity.DealStatusPending
}

// CanToggleActive reports whether the isActive switch may be flipped. Pause and resume only
// apply to approved deals.
func CanToggleActive(status entity.DealStatus) bool {
	return status == entity.DealStatusApproved
}
