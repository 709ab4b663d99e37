// internal/domain/models/division.go
package models

// Division is a top-level organizational unit. Teams and users reference
// divisions by id; the division itself carries no back-references.
type Division struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
