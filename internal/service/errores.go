package service

import "errors"

// Sentinel errors that handlers map to specific HTTP status codes.
// Everything else surfaces as a 400 with the service message.
var (
	// ErrNoEncontrado: the referenced entity does not exist (404).
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrSlugEnUso: slug unique index rejected the write (409). The caller
	// must retry with a disambiguated slug; nothing is auto-suffixed here.
	ErrSlugEnUso = errors.New("ya existe un producto con ese slug")
)
