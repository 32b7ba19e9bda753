package utils

import (
	"strconv"
	"strings"
	"time"
)

// Slugify derives a URL slug from a title the way the blog editor expects:
// spaces become underscores and a millisecond timestamp avoids collisions.
func Slugify(title string) string {
	return strings.ReplaceAll(title, " ", "_") + "_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// SplitTags takes a comma-separated string and returns a cleaned []string
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	var tags []string
	seen := make(map[string]bool)

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag)
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}
