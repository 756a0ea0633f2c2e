// file: internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("token tanpa exp")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token kadaluarsa pada %s", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (int64, error) {
	raw, ok := claims["id_user"]
	if !ok {
		return 0, errors.New("id_user tidak ada di claims")
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("id_user bertipe %T", raw)
	}
}

func storeIdentityToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	for _, key := range []string{"username", "full_name", "email", "phone", "whatsapp", "notes"} {
		if v, ok := claims[key].(string); ok {
			c.Locals(key, v)
		}
	}
}

// GetUserID membaca id user hasil AuthMiddleware dari locals.
// Hanya dipanggil di belakang AuthMiddleware; tanpa itu hasilnya 0.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals("id_user").(int64)
	return id
}
