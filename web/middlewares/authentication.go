package middlewares

import (
	"net/http"
	"strings"
	"time"

	"campustime.com/campustime/web/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the JWT for browser clients; API clients send a
// Bearer header instead.
const SessionCookie = "campustime.SessionCookie"

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid session token in the Authorization
// header or the session cookie and stores the claims on the context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		token, err := parseJwt(tokenStr, jwtSecret)

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token expired"))
				return
			}

			c.Set("claims", claims)
		}

		c.Next()
	}
}

// RequireRole gates a route group to one role. It runs after Authentication.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ClaimRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("Unauthorized access!"))
			return
		}
		c.Next()
	}
}

// ClaimUsername returns the authenticated username, empty when unset.
func ClaimUsername(c *gin.Context) string {
	return stringClaim(c, "unique_name")
}

// ClaimRole returns the authenticated role, empty when unset.
func ClaimRole(c *gin.Context) string {
	return stringClaim(c, "role")
}

func stringClaim(c *gin.Context, key string) string {
	v, ok := c.Get("claims")
	if !ok {
		return ""
	}
	claims, ok := v.(jwt.MapClaims)
	if !ok {
		return ""
	}
	s, _ := claims[key].(string)
	return s
}
