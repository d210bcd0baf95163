package emails

import (
	"fmt"

	"github.com/dmitrymomot/mailforge/pkg/mailer"
)

// KindTeamInvite invites a user to join a team.
const KindTeamInvite = "team_invite"

// Team invite parameter names.
const (
	ParamUsername           = "username"
	ParamInvitedByUsername  = "invited_by_username"
	ParamInvitedByEmail     = "invited_by_email"
	ParamTeamName           = "team_name"
	ParamInviteLink         = "invite_link"
	ParamInviteFromIP       = "invite_from_ip"
	ParamInviteFromLocation = "invite_from_location"
	ParamUserImageURL       = "user_image_url"
	ParamTeamImageURL       = "team_image_url"
)

const avatarSize = 64

// TeamInvite is the typed parameter set of the team invite template.
type TeamInvite struct {
	Username           string `yaml:"username"`
	InvitedByUsername  string `yaml:"invited_by_username"`
	InvitedByEmail     string `yaml:"invited_by_email"`
	TeamName           string `yaml:"team_name"`
	InviteLink         string `yaml:"invite_link"`
	InviteFromIP       string `yaml:"invite_from_ip"`
	InviteFromLocation string `yaml:"invite_from_location"`
	UserImageURL       string `yaml:"user_image_url"`
	TeamImageURL       string `yaml:"team_image_url"`
}

// Params converts the struct to catalog parameters, skipping empty fields.
func (t TeamInvite) Params() mailer.Params {
	return compact(mailer.Params{
		ParamUsername:           t.Username,
		ParamInvitedByUsername:  t.InvitedByUsername,
		ParamInvitedByEmail:     t.InvitedByEmail,
		ParamTeamName:           t.TeamName,
		ParamInviteLink:         t.InviteLink,
		ParamInviteFromIP:       t.InviteFromIP,
		ParamInviteFromLocation: t.InviteFromLocation,
		ParamUserImageURL:       t.UserImageURL,
		ParamTeamImageURL:       t.TeamImageURL,
	})
}

// TeamInviteTemplate returns the catalog entry for KindTeamInvite.
func TeamInviteTemplate() mailer.Template {
	return mailer.Template{
		Kind:        KindTeamInvite,
		Description: "Invitation to join a team",
		Defaults: mailer.Params{
			ParamUsername:           "alanturing",
			ParamInvitedByUsername:  "Alan",
			ParamInvitedByEmail:     "alan.turing@example.com",
			ParamTeamName:           "Enigma",
			ParamInviteLink:         "https://vercel.com/teams/invite/foo",
			ParamInviteFromIP:       "204.13.186.218",
			ParamInviteFromLocation: "São Paulo, Brazil",
		},
		Optional: []string{ParamUserImageURL, ParamTeamImageURL},
		Subject: func(p mailer.Params) string {
			return fmt.Sprintf("Join %s on Vercel", p.Get(ParamTeamName))
		},
		Render: renderTeamInvite,
	}
}

func renderTeamInvite(p mailer.Params) mailer.Document {
	team := p.Get(ParamTeamName)
	inviter := p.Get(ParamInvitedByUsername)

	var avatars []mailer.Node
	if hasImage(p, ParamUserImageURL) {
		avatars = append(avatars, mailer.Image(p.Get(ParamUserImageURL), p.Get(ParamUsername)+"'s profile picture", avatarSize, avatarSize))
	}
	if hasImage(p, ParamTeamImageURL) {
		avatars = append(avatars, mailer.Image(p.Get(ParamTeamImageURL), team+" team logo", avatarSize, avatarSize))
	}

	blocks := []mailer.Node{
		mailer.Heading(1, fmt.Sprintf("Join %s on Vercel", team)),
		mailer.Text(fmt.Sprintf("Hello %s,", p.Get(ParamUsername))),
		mailer.Paragraph(
			mailer.Strong(inviter),
			mailer.Span(" ("),
			mailer.Link("mailto:"+p.Get(ParamInvitedByEmail), p.Get(ParamInvitedByEmail)),
			mailer.Span(") has invited you to the "),
			mailer.Strong(team),
			mailer.Span(" team on Vercel."),
		),
	}
	if len(avatars) > 0 {
		blocks = append(blocks, mailer.Section(avatars...))
	}
	blocks = append(blocks,
		mailer.Button(p.Get(ParamInviteLink), "Join the team"),
		mailer.Paragraph(
			mailer.Span("or copy and paste this URL into your browser: "),
			mailer.Link(p.Get(ParamInviteLink), p.Get(ParamInviteLink)),
		),
		mailer.Divider(),
		mailer.Text(fmt.Sprintf(
			"This invitation was intended for %s. This invite was sent from %s located in %s. If you were not expecting this invitation, you can ignore this email.",
			p.Get(ParamUsername), p.Get(ParamInviteFromIP), p.Get(ParamInviteFromLocation),
		)),
	)

	return mailer.NewDocument(KindTeamInvite, fmt.Sprintf("Join %s on %s", inviter, team),
		mailer.Section(blocks...),
	)
}
