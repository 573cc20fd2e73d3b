package middleware

import (
	"strings"

	"gastropos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

// UserUUID parses UserID; uuid.Nil when malformed.
func (c *JWTClaims) UserUUID() uuid.UUID {
	id, _ := uuid.Parse(c.UserID)
	return id
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abort(c, apierror.Unauthorized(apierror.CodeNoToken))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			abort(c, apierror.Unauthorized(apierror.CodeBadToken))
			return
		}
		if claims.UserUUID() == uuid.Nil {
			abort(c, apierror.Unauthorized(apierror.CodeBadToken))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abort(c, apierror.Unauthorized(apierror.CodeNoAuth))
			return
		}
		if !allowed[claims.Role] {
			abort(c, apierror.Forbidden(apierror.CodeForbiddenRole))
			return
		}
		c.Next()
	}
}

// GetClaims returns the typed claims set by JWTAuth, or nil.
func GetClaims(c *gin.Context) *JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*JWTClaims)
	return claims
}

func abort(c *gin.Context, err *apierror.Error) {
	c.AbortWithStatusJSON(err.Status, err.Body())
}
