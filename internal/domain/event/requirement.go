package event

import "errors"

var (
	ErrInvalidRequirementKind = errors.New("invalid requirement kind")
	ErrMissingRequirementName = errors.New("requirement name is required")
	ErrInvalidQuantity        = errors.New("selected physical requirement needs quantity of at least 1")
)

// RequirementSelection is one department's requested requirement on an event.
// Physical selections carry a quantity; service selections carry notes only.
// Custom marks ad-hoc requirements that are not in the department's catalog.
type RequirementSelection struct {
	RequirementID string          `json:"requirementId"`
	Name          string          `json:"name"`
	Kind          RequirementKind `json:"kind"`
	Selected      bool            `json:"selected"`
	Quantity      int             `json:"quantity,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Custom        bool            `json:"custom,omitempty"`
}

func (r RequirementSelection) Validate() error {
	if r.Name == "" {
		return ErrMissingRequirementName
	}
	if !r.Kind.IsValid() {
		return ErrInvalidRequirementKind
	}
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if r.Selected && r.Kind == KindPhysical && r.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// ClaimsQuantity reports whether this selection consumes countable inventory.
// Service selections never do.
func (r RequirementSelection) ClaimsQuantity() bool {
	return r.Selected && r.Kind == KindPhysical && r.Quantity > 0
}
