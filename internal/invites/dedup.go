package invites

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Gate tracks whether the current browser has already been counted for an
// invite. It is a best-effort hint, not a security boundary: clearing the
// cookie jar, a second device, or disabled cookies all reset it. When the
// marker cannot be read the gate must answer "not visited" so the visitor is
// recounted — the failure mode is extra counting, never a wrongful denial.
type Gate interface {
	HasVisited(inviteID string) bool
	MarkVisited(inviteID string)
}

const (
	visitedCookiePrefix = "visited_"
	visitedCookieTTL    = 365 * 24 * time.Hour
)

// CookieGate keeps the visited marker in the visitor's cookie jar, one cookie
// per invite id. Marked only after a confirmed counter increment.
type CookieGate struct {
	Ctx *fiber.Ctx
}

func (g *CookieGate) HasVisited(inviteID string) bool {
	if g == nil || g.Ctx == nil {
		return false
	}
	return g.Ctx.Cookies(visitedCookiePrefix+inviteID) == "1"
}

func (g *CookieGate) MarkVisited(inviteID string) {
	if g == nil || g.Ctx == nil {
		return
	}
	g.Ctx.Cookie(&fiber.Cookie{
		Name:     visitedCookiePrefix + inviteID,
		Value:    "1",
		Expires:  time.Now().Add(visitedCookieTTL),
		Path:     "/",
		SameSite: "Lax",
	})
}
