// Package emails holds the transactional email templates shipped with mailforge.
//
// Each template is a mailer.Template: a complete default parameter set plus a
// pure render function. Catalog returns all of them as a static registry.
//
//	catalog := emails.Catalog()
//	doc, err := catalog.Render(emails.KindTokenLaunch, emails.TokenLaunch{
//		Name:   "Jupiter",
//		Symbol: "JUP",
//	}.Params())
//
// Image nodes are only added when their URL parameter is supplied.
package emails
