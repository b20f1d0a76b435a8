package middleware

import tele "gopkg.in/telebot.v4"

// AdminOptions defines how admin-only checks should behave.
type AdminOptions struct {
	// IsAdmin reports whether the sender belongs to the allowlist.
	IsAdmin  func(userID int64) bool
	OnReject tele.HandlerFunc
}

// AdminOnlyMiddleware ensures that only allowlisted users can invoke downstream handlers.
func AdminOnlyMiddleware(opts AdminOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if opts.IsAdmin != nil && !opts.IsAdmin(c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
