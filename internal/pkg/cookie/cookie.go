package cookie

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"studio-search/internal/pkg/config"
	"studio-search/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SetConditions stores v as base64url JSON under the configured conditions cookie.
func SetConditions(c *gin.Context, cfg config.CookieConfig, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "encode conditions cookie")
	}

	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		cfg.ConditionsName,
		base64.RawURLEncoding.EncodeToString(raw),
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
	return nil
}

// GetConditions decodes the conditions cookie into dst.
// It returns errs.ErrConditionsNotSaved when the cookie is absent or unreadable.
func GetConditions(c *gin.Context, cfg config.CookieConfig, dst any) error {
	value, err := c.Cookie(cfg.ConditionsName)
	if err != nil || value == "" {
		return errs.ErrConditionsNotSaved
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return errs.Mark(err, errs.ErrConditionsNotSaved)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.Mark(err, errs.ErrConditionsNotSaved)
	}
	return nil
}

func ClearConditions(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		cfg.ConditionsName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func IsNotSaved(err error) bool {
	return errors.Is(err, errs.ErrConditionsNotSaved) || errs.Is(err, errs.ErrConditionsNotSaved)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
