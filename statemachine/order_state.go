package statemachine

import (
	"errors"
	"strings"

	"campus-canteen-api/models"
)

// Transition defines a conventional state change in the order lifecycle.
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the conventional lifecycle. Note that admin status
// updates are NOT forced through this graph: any state is reachable from
// any other via the admin endpoint, so delivered and cancelled are terminal
// by convention only. CanTransition exists so callers can detect and flag
// irregular jumps.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusDelivered},
	{From: models.StatusReady, To: models.StatusCancelled},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// AllStatuses lists every legal order status.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// IsValidStatus reports whether s is one of the closed set of statuses.
func IsValidStatus(s models.OrderStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status ends the order lifecycle.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered || s == models.StatusCancelled
}

// IsActive reports whether an order is still in progress. Every status is
// either active or terminal, never both.
func IsActive(s models.OrderStatus) bool {
	return !IsTerminal(s)
}

// ValidTransitionsFrom returns all conventional next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether moving from one state to another follows the
// conventional lifecycle.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"irregular transition: " + string(from) + " -> " + string(to) +
			". Conventional transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, 0, len(nexts))
	for _, s := range nexts {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the conventional lifecycle for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
