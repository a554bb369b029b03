package pages

import (
	"context"
	"strings"

	"hrms.lite/internal/console/hrms"
)

// SignInController owns the sign-in form. The credential is stored only
// after the server has accepted it, so a rejected key never looks signed in.
type SignInController struct {
	api    hrms.API
	keys   KeyStore
	notify Notifier

	Key     string
	Error   string
	Loading bool
}

func NewSignInController(api hrms.API, keys KeyStore, notify Notifier) *SignInController {
	return &SignInController{api: api, keys: keys, notify: notify}
}

// Submit verifies the entered key. It returns true when the console should
// navigate to the dashboard.
func (c *SignInController) Submit(ctx context.Context) bool {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		c.Error = "Superadmin key is required"
		return false
	}

	c.Loading = true
	defer func() { c.Loading = false }()
	c.Error = ""

	if err := c.api.Enter(ctx, key); err != nil {
		c.Error = err.Error()
		c.notify.Error(err.Error())
		return false
	}

	if err := c.keys.Set(key); err != nil {
		c.Error = err.Error()
		c.notify.Error(err.Error())
		return false
	}

	c.notify.Success("Access granted")
	return true
}
