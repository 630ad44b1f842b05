package plans

import "errors"

// ErrInvalidPlan signals a plan id outside the catalog. Callers must fail
// closed on it — an unknown plan is never treated as unlimited.
var ErrInvalidPlan = errors.New("Invalid plan")

// Plan is one view-quota tier. MaxVisits nil means unlimited views.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	MaxVisits   *int64 `json:"max_visits"`
	Visits      string `json:"visits"`
	Description string `json:"description"`
	IsPopular   bool   `json:"is_popular,omitempty"`
}

func ceiling(n int64) *int64 { return &n }

var catalog = []Plan{
	{ID: "free", Name: "Free", Price: 0, MaxVisits: ceiling(20), Visits: "20 visits", Description: "Up to 20 invitation views."},
	{ID: "starter", Name: "Starter", Price: 5, MaxVisits: ceiling(50), Visits: "50 visits", Description: "Up to 50 invitation views.", IsPopular: true},
	{ID: "pro", Name: "Pro", Price: 10, MaxVisits: ceiling(100), Visits: "100 visits", Description: "Up to 100 invitation views."},
	{ID: "unlimited", Name: "Unlimited", Price: 15, MaxVisits: nil, Visits: "Unlimited visits", Description: "Unlimited invitation views."},
}

// All returns the plan catalog in display order.
func All() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a plan; unknown ids return ErrInvalidPlan.
func ByID(id string) (Plan, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrInvalidPlan
}

// MaxVisits returns the visit ceiling for a plan id (nil = unlimited).
// The returned pointer is a copy; callers may store it on a record.
func MaxVisits(id string) (*int64, error) {
	p, err := ByID(id)
	if err != nil {
		return nil, err
	}
	if p.MaxVisits == nil {
		return nil, nil
	}
	v := *p.MaxVisits
	return &v, nil
}
