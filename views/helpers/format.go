package helpers

import (
	"net/url"
	"strings"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/studyblog/studyblog-web/internal/api"
)

// FormatDate renders a backend ISO-8601 timestamp as a readable date. The raw
// string is returned when it does not parse, so a backend format change never
// blanks out the UI.
func FormatDate(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}

// Excerpt truncates text at a word boundary for post cards.
func Excerpt(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndex(cut, " "); idx > max/2 {
		cut = cut[:idx]
	}
	return cut + "…"
}

// AvatarURL returns the user's avatar image, falling back to the locally
// generated initials avatar.
func AvatarURL(user *api.User) string {
	if user == nil {
		return "/avatar/" + url.PathEscape("?") + ".png"
	}
	if user.Avatar != "" {
		return user.Avatar
	}
	return "/avatar/" + url.PathEscape(user.Name) + ".png"
}

// Classes merges tailwind class lists, letting later entries win conflicts.
func Classes(classes ...string) string {
	return twmerge.Merge(strings.Join(classes, " "))
}
