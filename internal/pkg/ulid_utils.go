package pkg

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateULID cria um identificador lexicograficamente ordenável para
// rascunhos de conversa e lotes de importação.
func GenerateULID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}

func ValidateULID(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}
