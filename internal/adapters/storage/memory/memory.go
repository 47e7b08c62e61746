// Package memory implementa los repos por defecto: listas por sesión
// en maps con RWMutex. Nada persiste entre reinicios y ninguna sesión
// ve las mutaciones de otra.
package memory

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
