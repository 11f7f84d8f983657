package statemachine

import (
	"fmt"

	"farm-market-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor models.UserRole    `json:"actor"`
}

// validTransitions is the authoritative state machine definition.
// Customers have no transition rights; they only track orders.
var validTransitions = []Transition{
	// Farmer accepts or cancels a fresh order
	{From: models.StatusPending, To: models.StatusAccepted, Actor: models.RoleFarmer},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: models.RoleFarmer},
	// Farmer starts preparing, or cancels an accepted order
	{From: models.StatusAccepted, To: models.StatusPreparing, Actor: models.RoleFarmer},
	{From: models.StatusAccepted, To: models.StatusCancelled, Actor: models.RoleFarmer},
	// Driver takes the order out and completes delivery
	{From: models.StatusPreparing, To: models.StatusOutForDelivery, Actor: models.RoleDriver},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: models.RoleDriver},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// TransitionError is returned when an actor requests a state change the
// machine does not allow.
type TransitionError struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

func (e *TransitionError) Error() string {
	nexts := ValidTransitionsFrom(e.From)
	if len(nexts) == 0 {
		return fmt.Sprintf("invalid transition: %s is a terminal state", e.From)
	}
	return fmt.Sprintf("invalid transition: %s → %s is not allowed for actor %q; valid transitions from %s are %v",
		e.From, e.To, e.Actor, e.From, nexts)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move an order from one state to
// another. It returns nil on success and a *TransitionError otherwise.
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Actor: actor}
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
