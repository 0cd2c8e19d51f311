package constvars

// Status codes carried by CustomError so callers embedding this core
// behind a transport can map failures without re-classifying them.
const (
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusUnprocessableEntity = 422

	StatusInternalServerError = 500
)
