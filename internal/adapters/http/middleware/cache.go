package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CatalogCache returns cache middleware for catalog data that rarely
// moves (sanction types, aid types, sport activities). 1 hour cache.
func CatalogCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		// Set cache headers only for successful GET requests
		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			c.Set("Cache-Control", "public, max-age=3600")
		}

		return err
	}
}

// NoCacheHeaders sets no-cache headers. Financial figures must always
// be fetched fresh.
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
