package profile

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/internal/api"
	"github.com/studyblog/studyblog-web/views/helpers"
	"github.com/studyblog/studyblog-web/views/layout"
)

// Data is the profile page state.
type Data struct {
	User   *api.User
	Error  string
	Notice string
}

// Show renders the profile editor: avatar, bio and social links.
func Show(data Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		user := data.User

		hw.Raw(`<div class="max-w-2xl mx-auto space-y-6">`)

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

		hw.Raw(`<section class="bg-white border rounded-lg p-6 flex items-center gap-5">`)
		hw.Rawf(`<img src="%s" alt="avatar" class="w-20 h-20 rounded-full">`, templ.EscapeString(helpers.AvatarURL(user)))
		hw.Raw(`<div><h1 class="text-2xl font-bold">`).Text(user.Name).Raw(`</h1>`)
		hw.Raw(`<p class="text-gray-500">`).Text(user.Email).Raw(`</p>`)
		hw.Raw(`<p class="text-xs text-gray-400 mt-1">Member since `).Text(helpers.FormatDate(user.CreatedAt)).Raw(`</p></div>`)

		hw.Raw(`<form method="post" action="/profile/avatar" enctype="multipart/form-data" class="ml-auto text-sm">`)
		hw.Raw(`<input type="file" name="image" accept="image/*" required class="block mb-2">`)
		hw.Raw(`<button type="submit" class="px-3 py-1.5 border rounded-md hover:bg-gray-100">Upload avatar</button>`)
		hw.Raw(`</form></section>`)

		hw.Raw(`<section class="bg-white border rounded-lg p-6">`)
		hw.Raw(`<h2 class="text-lg font-semibold mb-4">About you</h2>`)
		hw.Raw(`<form method="post" action="/profile" class="space-y-4">`)

		hw.Raw(`<div><label for="bio" class="block text-sm font-medium text-gray-700 mb-1">Bio</label>`)
		hw.Raw(`<textarea id="bio" name="bio" rows="4" class="w-full border rounded-md px-3 py-2">`)
		hw.Text(user.Bio)
		hw.Raw(`</textarea></div>`)

		socialField(hw, "github", "GitHub", user.Github)
		socialField(hw, "linkedin", "LinkedIn", user.Linkedin)
		socialField(hw, "twitter", "Twitter", user.Twitter)
		socialField(hw, "instagram", "Instagram", user.Instagram)

		hw.Raw(`<button type="submit" class="px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">Save profile</button>`)
		hw.Raw(`</form></section></div>`)
		return hw.Err()
	})
}

func socialField(hw *helpers.Writer, name, label, value string) {
	hw.Raw(`<div>`)
	hw.Rawf(`<label for="%s" class="block text-sm font-medium text-gray-700 mb-1">%s</label>`,
		name, templ.EscapeString(label))
	hw.Rawf(`<input id="%s" name="%s" value="%s" placeholder="https://" class="w-full border rounded-md px-3 py-2">`,
		name, name, templ.EscapeString(value))
	hw.Raw(`</div>`)
}
