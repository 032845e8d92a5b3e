package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/views/helpers"
)

// PageMeta contains page metadata for the HTML head.
type PageMeta struct {
	Title       string
	Description string
}

// NewPageMeta creates a PageMeta with site-wide defaults.
func NewPageMeta(title string) PageMeta {
	meta := PageMeta{
		Title:       "StudyBlog",
		Description: "A study blog for sharing posts and notes",
	}
	if title != "" {
		meta.Title = title + " · StudyBlog"
	}
	return meta
}

// Base wraps content in the site shell: head, header navigation and footer.
// Navigation links are conditional on the session's auth context.
func Base(meta PageMeta, authCtx *auth.Context, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`).Text(meta.Title).Raw(`</title>`)
		hw.Rawf(`<meta name="description" content="%s">`, templ.EscapeString(meta.Description))
		hw.Raw(`<script src="https://cdn.tailwindcss.com"></script>`)
		hw.Raw(`</head><body class="min-h-screen bg-gray-50 text-gray-900 flex flex-col">`)

		renderHeader(hw, authCtx)

		hw.Raw(`<main class="flex-1 max-w-4xl w-full mx-auto px-4 py-8">`)
		if hw.Err() != nil {
			return hw.Err()
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		hw.Raw(`</main>`)

		hw.Raw(`<footer class="border-t bg-white"><div class="max-w-4xl mx-auto px-4 py-6 text-sm text-gray-500">`)
		hw.Raw(`StudyBlog — share what you learn.`)
		hw.Raw(`</div></footer></body></html>`)
		return hw.Err()
	})
}

func renderHeader(hw *helpers.Writer, authCtx *auth.Context) {
	hw.Raw(`<header class="bg-white border-b"><nav class="max-w-4xl mx-auto px-4 py-3 flex items-center gap-6">`)
	hw.Raw(`<a href="/" class="text-xl font-bold text-blue-600">StudyBlog</a>`)
	hw.Raw(`<a href="/posts" class="text-gray-600 hover:text-gray-900">Posts</a>`)

	if authCtx != nil && authCtx.IsAuthenticated {
		hw.Raw(`<a href="/posts/create" class="text-gray-600 hover:text-gray-900">New post</a>`)
		if auth.HasRole(authCtx.User, auth.AdminRoles...) {
			hw.Raw(`<a href="/admin/users" class="text-gray-600 hover:text-gray-900">Manage users</a>`)
		}
		hw.Raw(`<div class="ml-auto flex items-center gap-3">`)
		hw.Rawf(`<img src="%s" alt="avatar" class="w-8 h-8 rounded-full">`,
			templ.EscapeString(helpers.AvatarURL(authCtx.User)))
		hw.Raw(`<a href="/profile" class="text-gray-700 font-medium">`).Text(authCtx.User.Name).Raw(`</a>`)
		hw.Raw(`<a href="/logout" class="text-gray-500 hover:text-gray-900">Log out</a>`)
		hw.Raw(`</div>`)
	} else {
		hw.Raw(`<div class="ml-auto flex items-center gap-3">`)
		hw.Raw(`<a href="/login" class="text-gray-600 hover:text-gray-900">Log in</a>`)
		hw.Raw(`<a href="/register" class="px-3 py-1.5 bg-blue-600 text-white rounded-md hover:bg-blue-700">Sign up</a>`)
		hw.Raw(`</div>`)
	}

	hw.Raw(`</nav></header>`)
}

// Alert renders an inline error or notice box above a form.
func Alert(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		hw := helpers.NewWriter(w)
		class := "mb-4 px-4 py-3 rounded-md text-sm "
		if kind == "error" {
			class += "bg-red-50 text-red-700 border border-red-200"
		} else {
			class += "bg-green-50 text-green-700 border border-green-200"
		}
		hw.Rawf(`<div class="%s">`, class).Text(message).Raw(`</div>`)
		return hw.Err()
	})
}
