package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetLocale serves the message catalog for one language. The catalogs ship
// next to the binary under locales/; the parameter is reduced to a bare
// file name so it can only address files in that directory.
func GetLocale(c *fiber.Ctx) error {
	lang := filepath.Base(filepath.Clean(c.Params("lang")))
	if lang == "." || strings.Contains(lang, "..") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid language parameter"})
	}

	catalog := filepath.Join("locales", lang+".json")
	if _, err := os.Stat(catalog); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Language file not found"})
	}

	return c.SendFile(catalog)
}
