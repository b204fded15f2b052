package tokenstore

import "context"

// KeyToken es la clave donde el cliente guarda el token de sesión.
const KeyToken = "token"

// Store es un key-value persistente del lado cliente.
// Get devuelve ok=false (sin error) si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
