package errorpages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/views/helpers"
)

// AccessDenied is shown when a session exists but its role is insufficient.
func AccessDenied() templ.Component {
	return page("Access denied", "You do not have permission to view this page.", "Back to home")
}

// NotFound is the 404 page.
func NotFound() templ.Component {
	return page("Page not found", "The page you are looking for does not exist.", "Back to home")
}

// ServerError is the catch-all failure page.
func ServerError() templ.Component {
	return page("Something went wrong", "An unexpected error occurred. Please try again.", "Back to home")
}

func page(title, detail, cta string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Raw(`<div class="text-center py-16">`)
		hw.Raw(`<h1 class="text-3xl font-bold mb-3">`).Text(title).Raw(`</h1>`)
		hw.Raw(`<p class="text-gray-600 mb-6">`).Text(detail).Raw(`</p>`)
		hw.Raw(`<a href="/" class="px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">`).Text(cta).Raw(`</a>`)
		hw.Raw(`</div>`)
		return hw.Err()
	})
}
