package emails

import (
	"fmt"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

// KindTokenLaunch announces a new token listing on the Mybit platform.
const KindTokenLaunch = "token_launch"

// Token launch parameter names.
const (
	ParamTokenName          = "name"
	ParamTokenSymbol        = "symbol"
	ParamTokenDescription   = "description"
	ParamWebsiteURL         = "website_url"
	ParamExplorerURL        = "explorer_url"
	ParamAcceptedCurrencies = "accepted_currencies"
	ParamPurchaseURL        = "purchase_url"
	ParamIconURL            = "icon_url"
	ParamPurchaseIconURL    = "purchase_icon_url"
	ParamTransferIconURL    = "transfer_icon_url"
)

const iconSize = 28

// TokenLaunch is the typed parameter set of the token launch template.
// Empty fields fall back to the template defaults; empty icon URLs omit the icon.
type TokenLaunch struct {
	Name               string `yaml:"name"`
	Symbol             string `yaml:"symbol"`
	Description        string `yaml:"description"`
	WebsiteURL         string `yaml:"website_url"`
	ExplorerURL        string `yaml:"explorer_url"`
	AcceptedCurrencies string `yaml:"accepted_currencies"`
	PurchaseURL        string `yaml:"purchase_url"`
	IconURL            string `yaml:"icon_url"`
	PurchaseIconURL    string `yaml:"purchase_icon_url"`
	TransferIconURL    string `yaml:"transfer_icon_url"`
}

// Params converts the struct to catalog parameters, skipping empty fields.
func (t TokenLaunch) Params() mailer.Params {
	return compact(mailer.Params{
		ParamTokenName:          t.Name,
		ParamTokenSymbol:        t.Symbol,
		ParamTokenDescription:   t.Description,
		ParamWebsiteURL:         t.WebsiteURL,
		ParamExplorerURL:        t.ExplorerURL,
		ParamAcceptedCurrencies: t.AcceptedCurrencies,
		ParamPurchaseURL:        t.PurchaseURL,
		ParamIconURL:            t.IconURL,
		ParamPurchaseIconURL:    t.PurchaseIconURL,
		ParamTransferIconURL:    t.TransferIconURL,
	})
}

// TokenLaunchTemplate returns the catalog entry for KindTokenLaunch.
func TokenLaunchTemplate() mailer.Template {
	return mailer.Template{
		Kind:        KindTokenLaunch,
		Description: "New token launch announcement",
		Defaults: mailer.Params{
			ParamTokenName:          "Meteora",
			ParamTokenSymbol:        "MET",
			ParamTokenDescription:   "Learn more about Meteora by visiting their website and checking out their details on Solscan.",
			ParamWebsiteURL:         "https://meteora.ag",
			ParamExplorerURL:        "https://solscan.io",
			ParamAcceptedCurrencies: "USDT, USDC, SOL, or BBSOL",
			ParamPurchaseURL:        "https://mybit.com",
		},
		Optional: []string{ParamIconURL, ParamPurchaseIconURL, ParamTransferIconURL},
		Subject:  tokenLaunchHeadline,
		Render:   renderTokenLaunch,
	}
}

func tokenLaunchHeadline(p mailer.Params) string {
	return fmt.Sprintf("New Token Launch: %s (%s)", p.Get(ParamTokenName), p.Get(ParamTokenSymbol))
}

func renderTokenLaunch(p mailer.Params) mailer.Document {
	name := p.Get(ParamTokenName)
	symbol := p.Get(ParamTokenSymbol)
	token := fmt.Sprintf("%s (%s)", name, symbol)
	headline := tokenLaunchHeadline(p)

	details := optionalIcon(p, ParamIconURL, name+" icon")
	details = append(details,
		mailer.Heading(3, token),
		mailer.Text(p.Get(ParamTokenDescription)),
		mailer.Paragraph(
			mailer.Link(p.Get(ParamWebsiteURL), "Website"),
			mailer.Span(" | "),
			mailer.Link(p.Get(ParamExplorerURL), "Solscan"),
		),
	)

	currencies := optionalIcon(p, ParamPurchaseIconURL, "Purchase icon")
	currencies = append(currencies,
		mailer.Heading(3, "Accepted Currencies"),
		mailer.Text(fmt.Sprintf("You can purchase %s using %s.", token, p.Get(ParamAcceptedCurrencies))),
	)

	transfer := optionalIcon(p, ParamTransferIconURL, "Transfer icon")
	transfer = append(transfer,
		mailer.Heading(3, "View and Sell Your Tokens"),
		mailer.Text(fmt.Sprintf("After purchase, your %s tokens will be visible in your account on both the Mybit app and website. You can sell your tokens directly on the platform.", symbol)),
	)

	return mailer.NewDocument(KindTokenLaunch, headline,
		mailer.Section(mailer.Heading(2, "Mybit Alpha")),
		mailer.Section(
			mailer.Heading(1, headline),
			mailer.Text(fmt.Sprintf("We are thrilled to announce the launch of a new token, %s, on the Mybit platform!", token)),
		),
		mailer.Section(
			mailer.Heading(2, "Token Details"),
			mailer.Section(details...),
		),
		mailer.Section(
			mailer.Heading(2, "How to Purchase"),
			mailer.Section(currencies...),
			mailer.Section(transfer...),
		),
		mailer.Section(
			mailer.Paragraph(
				mailer.Strong("Important Note:"),
				mailer.Span(fmt.Sprintf(" On-chain assets like %s are not withdrawable to external wallets. They can only be exchanged within the Mybit platform.", token)),
			),
		),
		mailer.Button(p.Get(ParamPurchaseURL), fmt.Sprintf("Purchase %s Now", token)),
		mailer.Divider(),
		footer("Mybit Alpha", "You are receiving this email because you opted in at our website."),
	)
}

// optionalIcon returns a single image node when the URL parameter resolves,
// and nothing otherwise.
func optionalIcon(p mailer.Params, param, alt string) []mailer.Node {
	if !hasImage(p, param) {
		return nil
	}
	return []mailer.Node{mailer.Image(p.Get(param), alt, iconSize, iconSize)}
}
