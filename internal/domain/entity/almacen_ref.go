package entity

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// AlmacenRef referencia a un almacén que puede venir como código legible
// ("ALM001") o como ID opaco. Solo uno de los dos campos está poblado.
type AlmacenRef struct {
	Codigo string
	ID     string
}

// AlmacenPorCodigo construye una referencia por código de almacén.
func AlmacenPorCodigo(codigo string) AlmacenRef {
	return AlmacenRef{Codigo: codigo}
}

// AlmacenPorID construye una referencia por ID opaco.
func AlmacenPorID(id string) AlmacenRef {
	return AlmacenRef{ID: id}
}

// ParseAlmacenRef interpreta un valor crudo: un UUID se trata como ID,
// cualquier otro string no vacío como código.
func ParseAlmacenRef(valor string) AlmacenRef {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return AlmacenRef{}
	}
	if _, err := uuid.Parse(valor); err == nil {
		return AlmacenRef{ID: valor}
	}
	return AlmacenRef{Codigo: valor}
}

// Valor devuelve la representación en string (código si existe, si no ID).
func (r AlmacenRef) Valor() string {
	if r.Codigo != "" {
		return r.Codigo
	}
	return r.ID
}

// IsZero indica si la referencia está vacía.
func (r AlmacenRef) IsZero() bool {
	return r.Codigo == "" && r.ID == ""
}

// MarshalJSON serializa como el string subyacente para mantener el formato de la API.
func (r AlmacenRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Valor())
}

// UnmarshalJSON acepta un string y lo interpreta con ParseAlmacenRef.
func (r *AlmacenRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseAlmacenRef(s)
	return nil
}
