// Package dto provides data transfer objects for link HTTP request and
// response handling.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/jellydator/validation/is"
)

// RegenerateLinkRequest contains the parameters for issuing a fresh link.
// URL is required for briefing links and ignored for trabalho links. Confirm
// acknowledges the replacement of a still-valid link.
type RegenerateLinkRequest struct {
	AlvoID  string `json:"alvo_id"`
	Tipo    string `json:"tipo"`
	URL     string `json:"url,omitempty"`
	Confirm bool   `json:"confirm"`
}

// Validate checks if the regenerate link request is valid.
func (r *RegenerateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.AlvoID,
			validation.Required,
			is.UUID,
		),
		validation.Field(&r.Tipo,
			validation.Required,
			validation.In("trabalho", "briefing"),
		),
		validation.Field(&r.URL,
			validation.When(r.Tipo == "briefing", validation.Required, is.URL),
		),
	)
}
