package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AnalyticsTracker enqueues product analytics events. utils.PosthogClientWrapper implements it.
type AnalyticsTracker interface {
	Enabled() bool
	Track(distinctID, event string, properties map[string]any)
}

// pathsToSkip contains paths that should not be tracked
var pathsToSkip = map[string]bool{
	"/health":          true,
	"/metrics":         true,
	"/webhooks/stripe": true,
}

// AnalyticsMiddleware tracks successful authenticated API calls, one event per route.
func AnalyticsMiddleware(tracker AnalyticsTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.Enabled() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/connect/transfers" -> "api_v1_connect_transfers"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		tracker.Track(userID, eventName, props)
	}
}

// TrackEvent sends a custom event on behalf of the authenticated caller.
func TrackEvent(c *gin.Context, tracker AnalyticsTracker, eventName string, properties map[string]any) {
	if tracker == nil || !tracker.Enabled() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	tracker.Track(userID, eventName, properties)
}
