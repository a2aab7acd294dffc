// seedstore inicializa el documento local de estado con una cuenta de
// demostración y un código promocional activo, para probar la tienda
// sin pasar por el signup.
//
// Uso: go run ./cmd/seedstore [ruta/storefront.json]
// Por defecto escribe en ./data/storefront.json. Si el documento ya
// existe se aborta: este comando nunca pisa estado real.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vasave/storefront-api/internal/domain/entity"
)

const (
	demoName     = "Sofía Cárdenas"
	demoEmail    = "sofia@vasave.cafe"
	demoPassword = "demo-password"
	demoPromo    = "PROMO20"
)

// seedDocument espejo del esquema v1 del documento de estado.
type seedDocument struct {
	Version      int               `json:"version"`
	Cart         []entity.CartLine `json:"cart"`
	PromoCode    string            `json:"promo_code"`
	ReferralCode string            `json:"referral_code"`
	Users        []entity.User     `json:"users"`
	Session      *entity.Session   `json:"session"`
	Orders       []entity.Order    `json:"orders"`
}

// asciiFold descompone y elimina diacríticos ("Sofía" -> "Sofia") para
// el código de referido, que se muestra en mayúsculas ASCII.
func asciiFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func main() {
	path := "./data/storefront.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "el documento %s ya existe; no se sobreescribe\n", path)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	first := strings.ToUpper(asciiFold(strings.Fields(demoName)[0]))
	if len(first) > 6 {
		first = first[:6]
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Name:         demoName,
		Email:        demoEmail,
		PasswordHash: string(hash),
		UserRef:      "VAS-" + first,
		CreatedAt:    time.Now(),
	}

	doc := seedDocument{
		Version:   1,
		Cart:      []entity.CartLine{},
		PromoCode: demoPromo,
		Users:     []entity.User{user},
		Session:   &entity.Session{Name: user.Name, Email: user.Email},
		Orders:    []entity.Order{},
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "serializar documento: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir documento: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Documento inicial escrito en %s\n", path)
	fmt.Printf("Cuenta demo: %s / %s (ref %s, promo %s activo)\n", demoEmail, demoPassword, user.UserRef, demoPromo)
}
