package layouts

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/templui/fittrack/internal/ctxkeys"
)

const defaultAppName = "FitTrack"

type NavItem struct {
	Label  string
	Href   string
	Icon   string
	Active bool
}

var navItems = []NavItem{
	{Label: "Dashboard", Href: "/app/dashboard", Icon: "📊"},
	{Label: "Activities", Href: "/app/activities", Icon: "🏃"},
	{Label: "Goals", Href: "/app/goals", Icon: "🎯"},
	{Label: "AI Features", Href: "/app/ai", Icon: "✨"},
	{Label: "Settings", Href: "/app/settings", Icon: "⚙️"},
}

func nav(ctx context.Context) []NavItem {
	path := ctxkeys.URLPath(ctx)
	items := make([]NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = path == item.Href || strings.HasPrefix(path, item.Href+"/")
		items[i] = item
	}
	return items
}

func appName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		return cfg.AppName
	}
	return defaultAppName
}

func ownerName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil {
		return cfg.OwnerName
	}
	return ""
}

func pageTitle(ctx context.Context, title string) string {
	if title == "" {
		return appName(ctx)
	}
	return title + " · " + appName(ctx)
}

// csrfHeaders is the hx-headers value sending the CSRF token with every htmx request.
func csrfHeaders(ctx context.Context) string {
	b, _ := json.Marshal(map[string]string{"X-CSRF-Token": ctxkeys.CSRFToken(ctx)})
	return string(b)
}
