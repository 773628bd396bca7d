// Package statemachine holds the lifecycle transition tables for retailers and deals.
// Every status change in the application layer goes through CanTransitionRetailer or
// CanTransitionDeal so the allowed moves live in one place.
package statemachine

import (
	"fmt"
	"strings"

	"dealsmarket/internal/domain/entity"
)

// Actor is who performs a transition.
type Actor string

const (
	ActorAdmin    Actor = "admin"
	ActorRetailer Actor = "retailer"
	ActorSystem   Actor = "system"
)

// RetailerTransition is one allowed retailer status change.
type RetailerTransition struct {
	From  entity.RetailerStatus
	To    entity.RetailerStatus
	Actor Actor
}

// retailerTransitions is the authoritative retailer lifecycle.
// An application is created pending and only an admin review moves it.
// A rejected retailer may be reconsidered by an admin; approval can be revoked.
var retailerTransitions = []RetailerTransition{
	{From: entity.RetailerStatusPending, To: entity.RetailerStatusApproved, Actor: ActorAdmin},
	{From: entity.RetailerStatusPending, To: entity.RetailerStatusRejected, Actor: ActorAdmin},
	{From: entity.RetailerStatusRejected, To: entity.RetailerStatusApproved, Actor: ActorAdmin},
	{From: entity.RetailerStatusApproved, To: entity.RetailerStatusRejected, Actor: ActorAdmin},
}

type retailerKey struct {
	from  entity.RetailerStatus
	to    entity.RetailerStatus
	actor Actor
}

var retailerTransitionMap = func() map[retailerKey]bool {
	m := make(map[retailerKey]bool, len(retailerTransitions))
	for _, t := range retailerTransitions {
		m[retailerKey{t.From, t.To, t.Actor}] = true
	}

	return m
}()

// RetailerTransitionsFrom returns the distinct statuses reachable from status.
func RetailerTransitionsFrom(status entity.RetailerStatus) []entity.RetailerStatus {
	var next []entity.RetailerStatus
	seen := make(map[entity.RetailerStatus]bool)
	for _, t := range retailerTransitions {
		if t.From == status && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}

	return next
}

// CanTransitionRetailer reports whether actor may move a retailer from one status to another.
func CanTransitionRetailer(from, to entity.RetailerStatus, actor Actor) error {
	if retailerTransitionMap[retailerKey{from, to, actor}] {
		return nil
	}

	next := RetailerTransitionsFrom(from)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}

	return &TransitionError{
		Entity:  "retailer",
		From:    string(from),
		To:      string(to),
		Actor:   actor,
		Allowed: names,
	}
}

// TransitionError describes a rejected lifecycle change.
type TransitionError struct {
	Entity  string
	From    string
	To      string
	Actor   Actor
	Allowed []string
}

func (e *TransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		allowed = strings.Join(e.Allowed, ", ")
	}

	return fmt.Sprintf("invalid %s transition %s -> %s for actor %q (valid targets: %s)",
		e.Entity, e.From, e.To, e.Actor, allowed)
}
