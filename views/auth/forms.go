// Package auth holds the login, registration and account-recovery pages.
package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/studyblog/studyblog-web/views/helpers"
	"github.com/studyblog/studyblog-web/views/layout"
)

// LoginData carries the login form state across failed submissions.
type LoginData struct {
	Email      string
	Next       string
	Error      string
	Notice     string
	ShowResend bool
}

func Login(data LoginData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		openCard(hw, "Log in")
		renderAlerts(ctx, w, hw, data.Error, data.Notice)

		hw.Raw(`<form method="post" action="/login" class="space-y-4">`)
		hw.Rawf(`<input type="hidden" name="next" value="%s">`, templ.EscapeString(data.Next))
		textField(hw, "email", "email", "Email", data.Email, true)
		textField(hw, "password", "password", "Password", "", true)
		submitButton(hw, "Log in")
		hw.Raw(`</form>`)

		if data.ShowResend {
			hw.Raw(`<form method="post" action="/resend-verification" class="mt-4 text-sm text-gray-600">`)
			hw.Rawf(`<input type="hidden" name="email" value="%s">`, templ.EscapeString(data.Email))
			hw.Raw(`Your email is not verified yet. `)
			hw.Raw(`<button type="submit" class="text-blue-600 hover:underline">Resend verification email</button>`)
			hw.Raw(`</form>`)
		}

		hw.Raw(`<p class="mt-4 text-sm text-gray-600"><a href="/forgot-password" class="text-blue-600 hover:underline">Forgot your password?</a></p>`)
		hw.Raw(`<p class="mt-1 text-sm text-gray-600">No account? <a href="/register" class="text-blue-600 hover:underline">Sign up</a></p>`)
		closeCard(hw)
		return hw.Err()
	})
}

// RegisterData carries the registration form state.
type RegisterData struct {
	Name   string
	Email  string
	Error  string
	Notice string
}

func Register(data RegisterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		openCard(hw, "Create your account")
		renderAlerts(ctx, w, hw, data.Error, data.Notice)

		hw.Raw(`<form method="post" action="/register" class="space-y-4">`)
		textField(hw, "name", "text", "Name", data.Name, true)
		textField(hw, "email", "email", "Email", data.Email, true)
		textField(hw, "password", "password", "Password", "", true)
		submitButton(hw, "Sign up")
		hw.Raw(`</form>`)
		hw.Raw(`<p class="mt-4 text-sm text-gray-600">Already registered? <a href="/login" class="text-blue-600 hover:underline">Log in</a></p>`)
		closeCard(hw)
		return hw.Err()
	})
}

// RecoveryData is shared by the forgot- and reset-password pages.
type RecoveryData struct {
	Email  string
	Token  string
	Error  string
	Notice string
}

func ForgotPassword(data RecoveryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		openCard(hw, "Recover your password")
		renderAlerts(ctx, w, hw, data.Error, data.Notice)

		hw.Raw(`<form method="post" action="/forgot-password" class="space-y-4">`)
		textField(hw, "email", "email", "Email", data.Email, true)
		submitButton(hw, "Send recovery email")
		hw.Raw(`</form>`)
		closeCard(hw)
		return hw.Err()
	})
}

func ResetPassword(data RecoveryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		openCard(hw, "Choose a new password")
		renderAlerts(ctx, w, hw, data.Error, data.Notice)

		hw.Raw(`<form method="post" action="/reset-password" class="space-y-4">`)
		hw.Rawf(`<input type="hidden" name="token" value="%s">`, templ.EscapeString(data.Token))
		textField(hw, "password", "password", "New password", "", true)
		submitButton(hw, "Reset password")
		hw.Raw(`</form>`)
		closeCard(hw)
		return hw.Err()
	})
}

// VerifyEmailData is the outcome of the verification link.
type VerifyEmailData struct {
	Success bool
	Message string
}

func VerifyEmail(data VerifyEmailData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)

		openCard(hw, "Email verification")
		if data.Success {
			hw.Raw(`<p class="text-green-700">Your email has been verified. You can log in now.</p>`)
			hw.Raw(`<a href="/login" class="mt-4 inline-block px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">Go to login</a>`)
		} else {
			hw.Raw(`<p class="text-red-700">`).Text(data.Message).Raw(`</p>`)
			hw.Raw(`<p class="mt-4 text-sm text-gray-600">The link may have expired. <a href="/login" class="text-blue-600 hover:underline">Request a new one from the login page</a>.</p>`)
		}
		closeCard(hw)
		return hw.Err()
	})
}

func renderAlerts(ctx context.Context, w io.Writer, hw *helpers.Writer, errMsg, notice string) {
	if hw.Err() != nil {
		return
	}
	if errMsg != "" {
		_ = layout.Alert("error", errMsg).Render(ctx, w)
	}
	if notice != "" {
		_ = layout.Alert("notice", notice).Render(ctx, w)
	}
}

func openCard(hw *helpers.Writer, title string) {
	hw.Raw(`<div class="max-w-md mx-auto bg-white border rounded-lg p-6">`)
	hw.Raw(`<h1 class="text-2xl font-bold mb-4">`).Text(title).Raw(`</h1>`)
}

func closeCard(hw *helpers.Writer) {
	hw.Raw(`</div>`)
}

func textField(hw *helpers.Writer, name, kind, label, value string, required bool) {
	req := ""
	if required {
		req = " required"
	}
	hw.Raw(`<div>`)
	hw.Rawf(`<label for="%s" class="block text-sm font-medium text-gray-700 mb-1">%s</label>`,
		name, templ.EscapeString(label))
	hw.Rawf(`<input id="%s" name="%s" type="%s" value="%s"%s class="w-full border rounded-md px-3 py-2 focus:outline-none focus:ring-2 focus:ring-blue-500">`,
		name, name, kind, templ.EscapeString(value), req)
	hw.Raw(`</div>`)
}

func submitButton(hw *helpers.Writer, label string) {
	hw.Rawf(`<button type="submit" class="w-full px-4 py-2 bg-blue-600 text-white rounded-md hover:bg-blue-700">%s</button>`,
		templ.EscapeString(label))
}
