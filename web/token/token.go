// Package token implements the stateless session record: a signed JWT
// carrying the user identity, transported in an http-only cookie. There
// is no server-side session store and no revocation list; a token stays
// valid until its expiry claim or the cookie lifetime runs out,
// whichever comes first.
package token

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jsprime/prime-cms/config"
)

const (
	// CookieName is the session cookie, matching what the admin UI reads.
	CookieName = "token"

	// TokenValidity bounds the token internally; CookieMaxAge bounds the
	// cookie. Both limits apply independently.
	TokenValidity = time.Hour
	CookieMaxAge  = 8 * 60 * 60
)

// Claims embeds the registered claim set plus the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

// Generate mints a signed session token for the given user.
func Generate(userID int, username string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(secret)
}

// Parse verifies signature and expiry and returns the embedded claims.
func Parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// SetCookie attaches the session token to the response. Secure is set
// outside debug mode.
func SetCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, value, CookieMaxAge, "/", "", !config.IsDebug(), true)
}

// ClearCookie blanks the session cookie, ending the session client-side.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", !config.IsDebug(), true)
}

// FromRequest extracts and verifies the session cookie. Missing,
// malformed and expired tokens all return an error; callers must not
// distinguish between them.
func FromRequest(c *gin.Context, secret []byte) (*Claims, error) {
	value, err := c.Cookie(CookieName)
	if err != nil {
		return nil, err
	}
	return Parse(value, secret)
}
