package emails

import (
	"maps"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

// Catalog returns the static catalog of every template in this package.
func Catalog() *mailer.Catalog {
	return mailer.MustCatalog(
		TokenLaunchTemplate(),
		TeamInviteTemplate(),
	)
}

func footer(brand, notice string) mailer.Node {
	return mailer.Section(
		mailer.Text("© 2023 "+brand+". All rights reserved."),
		mailer.Text(notice),
		mailer.Paragraph(mailer.Link("#", "Unsubscribe")),
	)
}

func compact(p mailer.Params) mailer.Params {
	maps.DeleteFunc(p, func(_, v string) bool { return v == "" })
	return p
}

// hasImage reports whether param holds an image URL that can be rendered.
// Unsafe URLs are treated like absent ones, so no broken image is emitted.
func hasImage(p mailer.Params, param string) bool {
	return p.Has(param) && mailer.IsSafeURL(p.Get(param))
}
