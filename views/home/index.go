package home

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/views/helpers"
)

// Index is the landing page: hero plus the most recent posts.
func Index(posts []api.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		hw.Raw(`<section class="text-center py-10">`)
		hw.Raw(`<h1 class="text-4xl font-bold mb-3">Share what you learn</h1>`)
		hw.Raw(`<p class="text-gray-600 mb-6">Write study notes, publish posts and follow other learners.</p>`)
		hw.Raw(`<a href="/posts" class="px-5 py-2.5 bg-blue-600 text-white rounded-md hover:bg-blue-700">Browse posts</a>`)
		hw.Raw(`</section>`)

		hw.Raw(`<section class="mt-8"><h2 class="text-2xl font-semibold mb-4">Latest posts</h2>`)
		if len(posts) == 0 {
			hw.Raw(`<p class="text-gray-500">Nothing published yet.</p>`)
		}
		hw.Raw(`<div class="grid gap-4 md:grid-cols-2">`)
		for _, post := range posts {
			renderCard(hw, post)
		}
		hw.Raw(`</div></section>`)
		return hw.Err()
	})
}

func renderCard(hw *helpers.Writer, post api.Post) {
	hw.Raw(`<article class="bg-white border rounded-lg p-4 hover:shadow-md transition-shadow">`)
	hw.Rawf(`<a href="/posts/%s" class="text-lg font-semibold text-gray-900 hover:text-blue-600">`,
		templ.EscapeString(post.Slug))
	hw.Text(post.Title)
	hw.Raw(`</a>`)
	hw.Raw(`<p class="text-sm text-gray-600 mt-2">`).Text(helpers.Excerpt(post.Text, 160)).Raw(`</p>`)
	hw.Raw(`<p class="text-xs text-gray-400 mt-3">`)
	hw.Text(post.Author.Name + " · " + helpers.FormatDate(post.CreatedAt))
	hw.Raw(`</p></article>`)
}
