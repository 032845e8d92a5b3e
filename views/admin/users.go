package admin

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/internal/auth"
	"github.com/studyblog/studyblog-web/views/helpers"
	"github.com/studyblog/studyblog-web/views/layout"
)

// UsersData is the user-management page state.
type UsersData struct {
	Users        []api.User
	SearchEmail  string
	SearchName   string
	SearchResult *api.User
	Viewer       *api.User
	Error        string
	Notice       string
}

// Users renders the admin user-management table. Promote, demote and delete
// are shown to super admins only, and super admin rows are never actionable.
func Users(data UsersData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		hw.Raw(`<h1 class="text-3xl font-bold mb-6">User management</h1>`)

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

		hw.Raw(`<form method="get" action="/admin/users" class="flex flex-wrap gap-2 mb-6">`)
		hw.Rawf(`<input name="email" value="%s" placeholder="Search by email" class="border rounded-md px-3 py-2">`,
			templ.EscapeString(data.SearchEmail))
		hw.Rawf(`<input name="name" value="%s" placeholder="Search by name" class="border rounded-md px-3 py-2">`,
			templ.EscapeString(data.SearchName))
		hw.Raw(`<button type="submit" class="px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">Search</button>`)
		hw.Raw(`</form>`)

		if data.SearchResult != nil {
			hw.Raw(`<div class="mb-6 bg-blue-50 border border-blue-200 rounded-lg p-4">`)
			hw.Raw(`<p class="text-sm text-blue-800 mb-2">Search result</p>`)
			renderTableOpen(hw)
			renderRow(hw, *data.SearchResult, data.Viewer)
			hw.Raw(`</tbody></table></div>`)
		}

		renderTableOpen(hw)
		for _, user := range data.Users {
			renderRow(hw, user, data.Viewer)
		}
		hw.Raw(`</tbody></table>`)
		return hw.Err()
	})
}

func renderTableOpen(hw *helpers.Writer) {
	hw.Raw(`<table class="w-full bg-white border rounded-lg text-sm">`)
	hw.Raw(`<thead><tr class="text-left border-b bg-gray-50">`)
	hw.Raw(`<th class="px-4 py-3">User</th><th class="px-4 py-3">Role</th><th class="px-4 py-3">Verified</th><th class="px-4 py-3">Actions</th>`)
	hw.Raw(`</tr></thead><tbody>`)
}

func renderRow(hw *helpers.Writer, user api.User, viewer *api.User) {
	hw.Raw(`<tr class="border-b">`)

	hw.Raw(`<td class="px-4 py-3"><div class="flex items-center gap-3">`)
	hw.Rawf(`<img src="%s" alt="" class="w-8 h-8 rounded-full">`, templ.EscapeString(helpers.AvatarURL(&user)))
	hw.Raw(`<div><p class="font-medium">`).Text(user.Name).Raw(`</p>`)
	hw.Raw(`<p class="text-gray-500">`).Text(user.Email).Raw(`</p></div></div></td>`)

	hw.Raw(`<td class="px-4 py-3">`)
	hw.Rawf(`<span class="%s">`, roleBadgeClass(user.Role))
	hw.Text(roleLabel(user.Role))
	hw.Raw(`</span></td>`)

	hw.Raw(`<td class="px-4 py-3">`)
	if user.EmailVerified {
		hw.Raw(`<span class="text-green-600">yes</span>`)
	} else {
		hw.Raw(`<span class="text-gray-400">no</span>`)
	}
	hw.Raw(`</td>`)

	hw.Raw(`<td class="px-4 py-3">`)
	renderActions(hw, user, viewer)
	hw.Raw(`</td></tr>`)
}

// renderActions mirrors the management rules: role changes and deletion are
// super-admin operations, super admins themselves are untouchable, and rename
// is available to every admin.
func renderActions(hw *helpers.Writer, user api.User, viewer *api.User) {
	if user.Role == string(auth.RoleSuperAdmin) {
		hw.Raw(`<span class="text-gray-400">protected</span>`)
		return
	}

	hw.Raw(`<div class="flex flex-wrap gap-2">`)

	hw.Rawf(`<form method="post" action="/admin/users/%s/name" class="flex gap-1">`, templ.EscapeString(user.ID))
	hw.Rawf(`<input name="name" value="%s" class="border rounded px-2 py-1 w-28">`, templ.EscapeString(user.Name))
	hw.Raw(`<button type="submit" class="px-2 py-1 border rounded hover:bg-gray-100">Rename</button></form>`)

	if auth.IsSuperAdmin(viewer) {
		if user.Role == string(auth.RoleAdmin) {
			hw.Rawf(`<form method="post" action="/admin/users/%s/demote">`, templ.EscapeString(user.ID))
			hw.Raw(`<button type="submit" class="px-2 py-1 border rounded hover:bg-gray-100">Demote</button></form>`)
		} else {
			hw.Rawf(`<form method="post" action="/admin/users/%s/promote">`, templ.EscapeString(user.ID))
			hw.Raw(`<button type="submit" class="px-2 py-1 border rounded hover:bg-gray-100">Promote</button></form>`)
		}
		hw.Rawf(`<form method="post" action="/admin/users/%s/delete" onsubmit="return confirm('Delete this user?')">`,
			templ.EscapeString(user.ID))
		hw.Raw(`<button type="submit" class="px-2 py-1 border border-red-300 text-red-600 rounded hover:bg-red-50">Delete</button></form>`)
	}

	hw.Raw(`</div>`)
}

func roleBadgeClass(role string) string {
	base := "px-2 py-0.5 rounded-full text-xs font-medium "
	switch role {
	case string(auth.RoleSuperAdmin):
		return helpers.Classes(base, "bg-purple-100 text-purple-700")
	case string(auth.RoleAdmin):
		return helpers.Classes(base, "bg-blue-100 text-blue-700")
	default:
		return helpers.Classes(base, "bg-gray-100 text-gray-600")
	}
}

func roleLabel(role string) string {
	switch role {
	case string(auth.RoleSuperAdmin):
		return "super admin"
	case string(auth.RoleAdmin):
		return "admin"
	default:
		return "user"
	}
}
