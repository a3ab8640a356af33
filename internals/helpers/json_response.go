// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination type & paging resolver
=================================*/

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// ResolvePaging membaca ?page= & ?limit= dan normalisasi.
// - defaultLimit: fallback kalau tidak ada/invalid
// - maxLimit: batasi limit maksimum (0 = tanpa batas)
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	pageStr := strings.TrimSpace(c.Query("page", "1"))
	limitStr := strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit)))

	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func BuildPagination(total int64, page, limit int) Pagination {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit)) // ceil
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

/* ===============================
   JSON responses
=================================*/

// JsonError: semua error tampil sebagai {"error": message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JsonData: sukses single-entity, payload dibungkus "data"
func JsonData(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// JsonCreated: sukses create (201), payload dibungkus "data"
func JsonCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

// JsonMessage: konfirmasi aksi (mis. delete)
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}
