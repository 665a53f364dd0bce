package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"lms/access"
	"lms/config"
)

// PrincipalKey is where the resolved principal lives in the request locals.
// A missing or nil value means an anonymous guest.
const PrincipalKey = "principal"

// GenerateJWT generates a JWT token for the user
func GenerateJWT(p *access.Principal) (string, error) {
	claims := jwt.MapClaims{
		"userId":      p.UserID,
		"email":       p.Email,
		"role":        p.Role,
		"isSuperUser": p.IsSuperUser,
		"departments": p.Departments,
		"jti":         uuid.NewString(),
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// principal in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	principal, err := principalFromHeader(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals(PrincipalKey, principal)
	return c.Next()
}

// OptionalJWTMiddleware resolves a principal when a valid token is present
// and lets anonymous requests through. Listing endpoints use this: guests
// see public content.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	principal, err := principalFromHeader(c)
	if err != nil {
		// A malformed token is not the same as no token.
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals(PrincipalKey, principal)
	return c.Next()
}

// AdminOnly requires an authenticated admin principal.
func AdminOnly(c *fiber.Ctx) error {
	principal := Principal(c)
	if principal == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	if !access.Authorize(principal, access.ActionManageContent) {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}
	return c.Next()
}

// Principal returns the resolved principal for the request, nil for guests.
func Principal(c *fiber.Ctx) *access.Principal {
	principal, _ := c.Locals(PrincipalKey).(*access.Principal)
	return principal
}

func principalFromHeader(c *fiber.Ctx) (*access.Principal, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("Missing or invalid Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("Invalid Authorization header format")
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("Invalid token payload")
	}

	userID, _ := claims["userId"].(float64)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	isSuperUser, _ := claims["isSuperUser"].(bool)

	var departments []string
	if raw, ok := claims["departments"].([]interface{}); ok {
		for _, d := range raw {
			if code, ok := d.(string); ok {
				departments = append(departments, code)
			}
		}
	}

	return &access.Principal{
		UserID:      uint(userID),
		Email:       email,
		Role:        role,
		IsSuperUser: isSuperUser,
		Departments: departments,
	}, nil
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
