package render

import (
	"context"

	"appliance-site/internal/domain/content"
	"appliance-site/internal/domain/design"
	"appliance-site/internal/source"
)

// Context is the per-request input shared by every block. It is a value so a render is
// a function of its arguments.
type Context struct {
	Theme    design.Theme
	Settings content.Settings
	Preview  bool
}

// Lookup is what data-bound blocks read from. resolve.Service satisfies it.
type Lookup interface {
	Services(ctx context.Context, q source.Query) source.Result[[]content.Service]
	Posts(ctx context.Context, q source.Query) source.Result[[]content.BlogPost]
	Testimonials(ctx context.Context, q source.Query) source.Result[[]content.Testimonial]
	TeamMembers(ctx context.Context, q source.Query) source.Result[[]content.TeamMember]
	ServiceAreas(ctx context.Context, q source.Query) source.Result[[]content.ServiceArea]
	FAQs(ctx context.Context, q source.Query) source.Result[[]content.FAQ]
}
