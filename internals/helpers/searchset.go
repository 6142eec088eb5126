package helper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   SearchSet envelope + page links
=================================*/

// PageLinks are the hyperlinks of one result page. Self is always present;
// Next exists iff offset+size < total; Previous exists iff offset > 0 and
// points to max(offset-size, 0).
type PageLinks struct {
	Self     string `json:"self"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// SearchSet is the list envelope of every paginated endpoint.
type SearchSet struct {
	Total  int64       `json:"total"`
	Size   int         `json:"size"`
	Offset int         `json:"offset"`
	Links  PageLinks   `json:"links"`
	Values interface{} `json:"values"`
}

// Filter is one query parameter the caller supplied; every page link echoes
// the full filter set back so a page can be re-fetched as-is.
type Filter struct {
	Key   string
	Value string
}

func pageURL(resource string, filters []Filter, size, offset int) string {
	var b strings.Builder
	b.WriteString(resource)
	b.WriteByte('?')
	for _, f := range filters {
		b.WriteString(f.Key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f.Value))
		b.WriteByte('&')
	}
	fmt.Fprintf(&b, "size=%d&offset=%d", size, offset)
	return b.String()
}

// BuildPageLinks assembles self/next/previous for one page window.
func BuildPageLinks(resource string, filters []Filter, size, offset int, total int64) PageLinks {
	links := PageLinks{Self: pageURL(resource, filters, size, offset)}
	if int64(offset+size) < total {
		links.Next = pageURL(resource, filters, size, offset+size)
	}
	if offset > 0 {
		prev := offset - size
		if prev < 0 {
			prev = 0
		}
		links.Previous = pageURL(resource, filters, size, prev)
	}
	return links
}

// JsonSearchSet writes a list page.
func JsonSearchSet(c *fiber.Ctx, set SearchSet) error {
	return c.Status(fiber.StatusOK).JSON(set)
}
