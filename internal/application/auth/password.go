package auth

import "golang.org/x/crypto/bcrypt"

// Hasher hashea y verifica passwords con bcrypt (cost por defecto).
type Hasher struct {
	cost int
}

// NewHasher construye el hasher con bcrypt.DefaultCost.
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash devuelve el digest bcrypt del password en texto plano.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara un password en texto plano contra su digest.
// Un digest malformado cuenta como verificación fallida, no como error.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
