// Package domain defines the trabalho (delivered job) entities consumed by
// the link resolution core and the admin file endpoints.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/estudiomov/linkgate/internal/errors"
)

// Named errors for the trabalhos module.
var (
	// ErrTrabalhoNotFound indicates the target entity referenced by a link
	// does not exist (or the link points somewhere it shouldn't).
	ErrTrabalhoNotFound = apperrors.Wrap(apperrors.ErrNotFound, "trabalho")

	// ErrArquivoNotFound indicates the requested file id is not present in
	// the trabalho's final file list.
	ErrArquivoNotFound = apperrors.Wrap(apperrors.ErrNotFound, "arquivo")
)

// Arquivo is one downloadable deliverable attached to a trabalho. The list
// lives as a JSON array column (trabalhos.arquivos_finais); there is no
// independent table and the parent entity fully owns the lifecycle.
type Arquivo struct {
	// ID is an opaque client-generated identifier, unique within the list.
	ID string `json:"id"`
	// Nome is the original filename, used for the download disposition.
	Nome string `json:"nome"`
	// URL is the storage locator: either a legacy public object URL or a
	// bucket-relative path. Both forms stay valid indefinitely.
	URL string `json:"url"`
	// Tipo is the MIME type, used as Content-Type and as a viewer icon hint.
	Tipo string `json:"tipo"`
}

// Cliente carries the only client field the public projection exposes.
type Cliente struct {
	NomeOuRazao string `json:"nome_ou_razao"`
}

// Trabalho is the full row, including internal costing fields that must
// never cross the public boundary.
type Trabalho struct {
	ID             uuid.UUID
	Titulo         string
	Descricao      string
	DataConclusao  *time.Time
	ArquivosFinais []Arquivo
	ClienteID      *uuid.UUID
	// Internal fields, excluded from every public projection.
	ValorTotal     float64
	CustoProducao  float64
	CriadoEm       time.Time
}

// Projection is the read-only, filtered view of a trabalho exposed to link
// holders. Only these fields ever leave the service for tipo="trabalho"
// resolutions.
type Projection struct {
	ID             uuid.UUID  `json:"id"`
	Titulo         string     `json:"titulo"`
	Descricao      string     `json:"descricao,omitempty"`
	DataConclusao  *time.Time `json:"data_conclusao,omitempty"`
	ArquivosFinais []Arquivo  `json:"arquivos_finais"`
	Cliente        *Cliente   `json:"clientes,omitempty"`
}

// Arquivo returns the descriptor with the given id, if present. The gate uses
// this to bound downloads to files actually listed under the target.
func (p *Projection) Arquivo(fileID string) (*Arquivo, bool) {
	for i := range p.ArquivosFinais {
		if p.ArquivosFinais[i].ID == fileID {
			return &p.ArquivosFinais[i], true
		}
	}
	return nil, false
}
