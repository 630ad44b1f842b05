package templates

import "errors"

// ErrUnknownTemplate signals a template id outside the catalog.
var ErrUnknownTemplate = errors.New("Unknown template type")

// Template is one presentation variant for the invite page.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var catalog = []Template{
	{ID: "wedding", Name: "Elegant Wedding", Description: "A classic and elegant template for weddings."},
	{ID: "corporate", Name: "Modern Corporate", Description: "A professional template for corporate events."},
	{ID: "meetup", Name: "Casual Meetup", Description: "A friendly template for community meetups."},
	{ID: "party", Name: "Birthday Bash", Description: "A fun and vibrant template for parties."},
	{ID: "conference", Name: "Tech Conference", Description: "A sleek template for tech conferences."},
}

// All returns the template catalog in display order.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a template; unknown ids return ErrUnknownTemplate.
func ByID(id string) (Template, error) {
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrUnknownTemplate
}
