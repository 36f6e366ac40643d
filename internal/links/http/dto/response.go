package dto

import (
	"time"

	linksDomain "github.com/estudiomov/linkgate/internal/links/domain"
	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// ResolveResponse is the public payload of a successful token resolution:
// either a redirect instruction or a trabalho projection.
type ResolveResponse struct {
	Type     string                      `json:"type"`
	URL      string                      `json:"url,omitempty"`
	Trabalho *trabalhosDomain.Projection `json:"trabalho,omitempty"`
}

// MapResolutionToResponse converts a domain resolution to the public payload.
func MapResolutionToResponse(resolution *linksDomain.Resolution) ResolveResponse {
	if resolution.Tipo == linksDomain.LinkTypeBriefing {
		return ResolveResponse{
			Type: "redirect",
			URL:  resolution.RedirectURL,
		}
	}
	return ResolveResponse{
		Type:     "trabalho",
		Trabalho: resolution.Trabalho,
	}
}

// IssuedLinkResponse represents a freshly regenerated link in admin API
// responses.
type IssuedLinkResponse struct {
	Token    string    `json:"token"`
	URL      string    `json:"url"`
	CriadoEm time.Time `json:"criado_em"`
	ExpiraEm time.Time `json:"expira_em"`
}

// MapIssuedLinkToResponse converts an issued link to an API response.
func MapIssuedLinkToResponse(issued *linksDomain.IssuedLink) IssuedLinkResponse {
	return IssuedLinkResponse{
		Token:    issued.Token,
		URL:      issued.URL,
		CriadoEm: issued.CriadoEm,
		ExpiraEm: issued.ExpiraEm,
	}
}

// LinkResponse represents an existing link in admin API responses.
type LinkResponse struct {
	Token    string     `json:"token"`
	Tipo     string     `json:"tipo"`
	URL      string     `json:"url"`
	CriadoEm time.Time  `json:"criado_em"`
	ExpiraEm *time.Time `json:"expira_em,omitempty"`
}

// MapLinkToResponse converts a domain link to an API response. shareURL is
// the composed public URL for the token.
func MapLinkToResponse(link *linksDomain.Link, shareURL string) LinkResponse {
	return LinkResponse{
		Token:    link.Token,
		Tipo:     string(link.Tipo),
		URL:      shareURL,
		CriadoEm: link.CriadoEm,
		ExpiraEm: link.ExpiraEm,
	}
}

// ConflictResponse is returned when regeneration is refused because a valid
// link already exists and the request did not confirm the replacement.
type ConflictResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Current LinkResponse `json:"current"`
}
