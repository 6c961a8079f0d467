package app

import "context"

// Signup creates a user. Success and failure both land in the auth status
// region; the caller is expected to log in afterwards.
func (a *App) Signup(ctx context.Context, username, password string) {
	if err := a.shop.Signup(ctx, username, password); err != nil {
		a.logger.Printf("signup: %v", err)
		a.page.AuthStatus.SetText("Signup failed")
		return
	}
	a.page.AuthStatus.SetText("Signup success — now login")
}

// Login stores the returned session token, reveals the logged-in controls and
// refreshes catalog and badge. The token is held in memory only and is not
// attached to later requests; any session continuity rides on cookies the
// backend may set, as in the original client.
func (a *App) Login(ctx context.Context, username, password string) {
	token, err := a.shop.Login(ctx, username, password)
	if err != nil {
		a.logger.Printf("login: %v", err)
		a.page.AuthStatus.SetText("Login failed")
		return
	}

	a.state.token = token
	a.page.AuthStatus.SetText("Logged in")
	a.page.LogoutCtl.Show()
	a.page.ViewOrders.Show()

	a.LoadProducts(ctx)
	a.updateCartCount()
}

// Logout clears the token locally and hides the logged-in controls. The
// server side is not told; the token simply stops existing here.
func (a *App) Logout() {
	a.state.token = ""
	a.page.LogoutCtl.Hide()
	a.page.ViewOrders.Hide()
	a.page.AuthStatus.SetText("Logged out")
}
