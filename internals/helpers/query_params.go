package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageSize = 10
)

// QueryStrPtr returns the query parameter as a pointer, nil when absent or
// blank. Optional filters stay nil so the SQL predicates fall through.
func QueryStrPtr(c *fiber.Ctx, name string) *string {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryIntPtr parses an optional integer query parameter. A non-numeric value
// reports an error for the 422 path; absence is not an error.
func QueryIntPtr(c *fiber.Ctx, name string) (*int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// ParsePaging reads the size/offset pair with the API defaults (size 10,
// offset 0). Only syntax is handled here; range bounds live on the query DTOs
// next to the other validator constraints.
func ParsePaging(c *fiber.Ctx) (size, offset int, fieldErrs map[string][]string) {
	size, offset = DefaultPageSize, 0

	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs = appendFieldErr(fieldErrs, "size", "must be an integer")
		} else {
			size = n
		}
	}
	if raw := strings.TrimSpace(c.Query("offset")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs = appendFieldErr(fieldErrs, "offset", "must be an integer")
		} else {
			offset = n
		}
	}
	return size, offset, fieldErrs
}

func appendFieldErr(m map[string][]string, field, msg string) map[string][]string {
	if m == nil {
		m = map[string][]string{}
	}
	m[field] = append(m[field], msg)
	return m
}
