package posts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/storage"
	"github.com/studyblog/studyblog-web/views/helpers"
	"github.com/studyblog/studyblog-web/views/layout"
)

// List renders the paginated post index with its search and date filters.
func List(page *api.PaginatedPosts, filter api.PostFilter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		hw.Raw(`<h1 class="text-3xl font-bold mb-6">Posts</h1>`)

		hw.Raw(`<form method="get" action="/posts" class="flex flex-wrap gap-2 mb-6">`)
		hw.Rawf(`<input name="search" value="%s" placeholder="Search posts…" class="flex-1 min-w-48 border rounded-md px-3 py-2">`,
			templ.EscapeString(filter.Search))
		hw.Rawf(`<input name="startDate" type="date" value="%s" class="border rounded-md px-3 py-2">`,
			templ.EscapeString(filter.StartDate))
		hw.Rawf(`<input name="endDate" type="date" value="%s" class="border rounded-md px-3 py-2">`,
			templ.EscapeString(filter.EndDate))
		hw.Raw(`<button type="submit" class="px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">Filter</button>`)
		hw.Raw(`</form>`)

		if page == nil || len(page.Posts) == 0 {
			hw.Raw(`<p class="text-gray-500">No posts match your filters.</p>`)
			return hw.Err()
		}

		hw.Raw(`<div class="space-y-4">`)
		for _, post := range page.Posts {
			renderRow(hw, post)
		}
		hw.Raw(`</div>`)

		renderPager(hw, page, filter)
		return hw.Err()
	})
}

func renderRow(hw *helpers.Writer, post api.Post) {
	hw.Raw(`<article class="bg-white border rounded-lg p-5">`)
	hw.Rawf(`<a href="/posts/%s" class="text-xl font-semibold hover:text-blue-600">`, templ.EscapeString(post.Slug))
	hw.Text(post.Title)
	hw.Raw(`</a>`)
	hw.Raw(`<p class="text-gray-600 mt-2">`).Text(helpers.Excerpt(post.Text, 220)).Raw(`</p>`)
	hw.Raw(`<div class="flex items-center gap-2 mt-3 text-sm text-gray-400">`)
	hw.Rawf(`<img src="%s" alt="" class="w-6 h-6 rounded-full">`, templ.EscapeString(helpers.AvatarURL(&post.Author)))
	hw.Text(post.Author.Name + " · " + helpers.FormatDate(post.CreatedAt))
	hw.Raw(`</div></article>`)
}

func renderPager(hw *helpers.Writer, page *api.PaginatedPosts, filter api.PostFilter) {
	if page.TotalPages <= 1 {
		return
	}
	hw.Raw(`<nav class="flex items-center justify-center gap-2 mt-8">`)
	for n := 1; n <= page.TotalPages; n++ {
		class := "px-3 py-1.5 border rounded-md text-sm hover:bg-gray-100"
		if n == page.Page {
			class = "px-3 py-1.5 border rounded-md text-sm bg-blue-600 text-white"
		}
		hw.Rawf(`<a href="%s" class="%s">%d</a>`, pageURL(filter, n), class, n)
	}
	hw.Raw(`</nav>`)
}

func pageURL(filter api.PostFilter, page int) string {
	u := fmt.Sprintf("/posts?page=%d", page)
	if filter.Search != "" {
		u += "&search=" + templ.EscapeString(filter.Search)
	}
	if filter.StartDate != "" {
		u += "&startDate=" + templ.EscapeString(filter.StartDate)
	}
	if filter.EndDate != "" {
		u += "&endDate=" + templ.EscapeString(filter.EndDate)
	}
	return u
}

// DetailData is everything the post page shows.
type DetailData struct {
	Post     *api.Post
	Comments []storage.Comment
	Viewer   *api.User
	CanEdit  bool
	Error    string
	Notice   string
}

// Detail renders a single post with author card, share actions and comments.
func Detail(data DetailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		post := data.Post

		if data.Error != "" {
			if err := layout.Alert("error", data.Error).Render(ctx, w); err != nil {
				return err
			}
		}
		if data.Notice != "" {
			if err := layout.Alert("notice", data.Notice).Render(ctx, w); err != nil {
				return err
			}
		}

		hw.Raw(`<article class="bg-white border rounded-lg p-6">`)
		hw.Raw(`<h1 class="text-3xl font-bold">`).Text(post.Title).Raw(`</h1>`)

		hw.Raw(`<div class="flex items-center gap-3 mt-4 pb-4 border-b">`)
		hw.Rawf(`<img src="%s" alt="" class="w-10 h-10 rounded-full">`, templ.EscapeString(helpers.AvatarURL(&post.Author)))
		hw.Raw(`<div><p class="font-medium">`).Text(post.Author.Name).Raw(`</p>`)
		hw.Raw(`<p class="text-sm text-gray-400">`).Text(helpers.FormatDate(post.CreatedAt)).Raw(`</p></div>`)

		hw.Raw(`<div class="ml-auto flex items-center gap-2 text-sm">`)
		hw.Rawf(`<a href="/posts/%s/pdf" class="px-3 py-1.5 border rounded-md hover:bg-gray-100">PDF</a>`,
			templ.EscapeString(post.Slug))
		if data.CanEdit {
			hw.Rawf(`<a href="/posts/%s/edit" class="px-3 py-1.5 border rounded-md hover:bg-gray-100">Edit</a>`,
				templ.EscapeString(post.Slug))
			hw.Rawf(`<form method="post" action="/posts/%s/delete" onsubmit="return confirm('Delete this post?')">`,
				templ.EscapeString(post.Slug))
			hw.Raw(`<button type="submit" class="px-3 py-1.5 border border-red-300 text-red-600 rounded-md hover:bg-red-50">Delete</button></form>`)
		}
		hw.Raw(`</div></div>`)

		if post.Image != "" {
			hw.Rawf(`<img src="%s" alt="" class="mt-4 rounded-lg max-h-96 w-full object-cover">`,
				templ.EscapeString(post.Image))
		}

		hw.Raw(`<div class="prose mt-6 whitespace-pre-line">`).Text(post.Text).Raw(`</div>`)

		hw.Raw(`<div class="mt-6 pt-4 border-t flex items-center gap-3 text-sm text-gray-500">`)
		hw.Raw(`Share this post:`)
		hw.Rawf(`<img src="/posts/%s/qr.png" alt="QR code for this post" class="w-24 h-24">`,
			templ.EscapeString(post.Slug))
		hw.Raw(`</div></article>`)

		renderComments(hw, data)
		return hw.Err()
	})
}

func renderComments(hw *helpers.Writer, data DetailData) {
	hw.Raw(`<section class="mt-8"><h2 class="text-xl font-semibold mb-4">Comments</h2>`)

	if data.Viewer != nil {
		hw.Rawf(`<form method="post" action="/posts/%s/comments" class="mb-6 flex gap-3">`,
			templ.EscapeString(data.Post.Slug))
		hw.Rawf(`<img src="%s" alt="" class="w-9 h-9 rounded-full">`, templ.EscapeString(helpers.AvatarURL(data.Viewer)))
		hw.Raw(`<div class="flex-1"><textarea name="comment" rows="3" minlength="3" required placeholder="Add a comment…" class="w-full border rounded-md px-3 py-2"></textarea>`)
		hw.Raw(`<button type="submit" class="mt-2 px-4 py-1.5 bg-blue-600 text-white rounded-md hover:bg-blue-700">Comment</button></div>`)
		hw.Raw(`</form>`)
	} else {
		hw.Raw(`<p class="text-sm text-gray-500 mb-6"><a href="/login" class="text-blue-600 hover:underline">Log in</a> to leave a comment.</p>`)
	}

	if len(data.Comments) == 0 {
		hw.Raw(`<p class="text-gray-500 text-sm">No comments yet.</p>`)
	}
	for _, comment := range data.Comments {
		hw.Raw(`<div class="flex gap-3 py-3 border-b">`)
		avatar := comment.AuthorAvatar
		if avatar == "" {
			avatar = "/avatar/" + templ.EscapeString(comment.AuthorName) + ".png"
		}
		hw.Rawf(`<img src="%s" alt="" class="w-9 h-9 rounded-full">`, templ.EscapeString(avatar))
		hw.Raw(`<div><p class="text-sm font-semibold text-gray-700">`).Text(comment.AuthorName).Raw(`</p>`)
		hw.Raw(`<p class="text-sm text-gray-600">`).Text(comment.Text).Raw(`</p></div></div>`)
	}
	hw.Raw(`</section>`)
}

// FormData carries the create/edit form state.
type FormData struct {
	Title    string
	Slug     string
	Text     string
	Image    string
	Action   string
	Editing  bool
	Error    string
	Draft    *storage.Draft
	DraftAge string
}

// Form renders the post editor, used by both create and edit.
func Form(data FormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		title := "New post"
		if data.Editing {
			title = "Edit post"
		}
		hw.Raw(`<div class="max-w-2xl mx-auto bg-white border rounded-lg p-6">`)
		hw.Raw(`<h1 class="text-2xl font-bold mb-4">`).Text(title).Raw(`</h1>`)

		if data.Error != "" {
			if err := layout.Alert("error", data.Error).Render(ctx, w); err != nil {
				return err
			}
		}
		if data.Draft != nil {
			hw.Raw(`<div class="mb-4 px-4 py-3 rounded-md text-sm bg-amber-50 text-amber-800 border border-amber-200">`)
			hw.Text("Restored your draft from " + data.DraftAge + ".")
			hw.Raw(`</div>`)
		}

		hw.Rawf(`<form method="post" action="%s" class="space-y-4">`, templ.EscapeString(data.Action))
		formField(hw, "title", "Title", data.Title)
		formField(hw, "slug", "Slug", data.Slug)
		formField(hw, "image", "Cover image URL (optional)", data.Image)
		hw.Raw(`<div><label for="text" class="block text-sm font-medium text-gray-700 mb-1">Content</label>`)
		hw.Raw(`<textarea id="text" name="text" rows="12" required class="w-full border rounded-md px-3 py-2">`)
		hw.Text(data.Text)
		hw.Raw(`</textarea></div>`)

		hw.Raw(`<div class="flex gap-2">`)
		hw.Raw(`<button type="submit" class="px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">Publish</button>`)
		if !data.Editing {
			hw.Raw(`<button type="submit" formaction="/posts/draft" formnovalidate class="px-4 py-2 border rounded-md hover:bg-gray-100">Save draft</button>`)
		}
		hw.Raw(`</div></form></div>`)
		return hw.Err()
	})
}

func formField(hw *helpers.Writer, name, label, value string) {
	required := ""
	if name == "title" {
		required = " required"
	}
	hw.Raw(`<div>`)
	hw.Rawf(`<label for="%s" class="block text-sm font-medium text-gray-700 mb-1">%s</label>`,
		name, templ.EscapeString(label))
	hw.Rawf(`<input id="%s" name="%s" value="%s"%s class="w-full border rounded-md px-3 py-2">`,
		name, name, templ.EscapeString(value), required)
	hw.Raw(`</div>`)
}
