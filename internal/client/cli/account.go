package cli

import (
	"context"
	"fmt"
	"regexp"

	"github.com/releve-app/releve/internal/client/models"
)

// Wallet prints the credit balance and the weekly allowance.
func (a *App) Wallet(ctx context.Context) error {
	wallet, err := a.api.GetWallet(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Balance: $%d (weekly allowance $%d)\n", wallet.Balance, wallet.WeeklyAllowance)
	return nil
}

// Whoami prints the current profile together with the server-side influencer
// status, which may be fresher than the cached one.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	if user.Role != "" {
		fmt.Fprintf(a.out, "Role: %s\n", user.Role)
	}
	if user.AvatarURL != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", user.AvatarURL)
	}

	status, err := a.api.InfluencerStatus(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error loading influencer status: %s\n", err)
		return err
	}
	switch status {
	case models.InfluencerPending:
		fmt.Fprintln(a.out, "Creator application: pending approval")
	case models.InfluencerApproved:
		fmt.Fprintln(a.out, "Creator: approved")
	default:
		fmt.Fprintln(a.out, "Creator application: none")
	}
	if status != "" {
		st := status
		a.session.UpdateUser(models.UserUpdate{InfluencerStatus: &st})
	}
	return nil
}

var avatarExt = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)

// Avatar updates the profile picture URL: server first, then the local
// session cache, mirroring the mobile app's order.
func (a *App) Avatar(ctx context.Context) error {
	url, err := getSimpleText(a.reader, "Avatar URL (png/jpg)", a.out)
	if err != nil {
		return err
	}
	if !avatarExt.MatchString(url) {
		fmt.Fprintln(a.out, "Only PNG/JPG images are allowed")
		return nil
	}

	saved, err := a.api.UpdateAvatar(ctx, url)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	a.session.UpdateUser(models.UserUpdate{AvatarURL: &saved})
	fmt.Fprintln(a.out, "Avatar updated")
	return nil
}

// ApplyCreator submits a content-creator application: a city plus at least
// one social link, the same client-side checks the mobile app runs.
func (a *App) ApplyCreator(ctx context.Context) error {
	cities, err := a.api.ListCities(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Cities:")
	for _, c := range cities {
		fmt.Fprintf(a.out, "%s  %s\n", c.ID, c.Name)
	}

	cityID, err := getSimpleText(a.reader, "City id", a.out)
	if err != nil {
		return err
	}
	if cityID == "" {
		fmt.Fprintln(a.out, "A city is required")
		return nil
	}

	instagram, err := getSimpleText(a.reader, "Instagram link (empty to skip)", a.out)
	if err != nil {
		return err
	}
	tiktok, err := getSimpleText(a.reader, "TikTok link (empty to skip)", a.out)
	if err != nil {
		return err
	}
	if instagram == "" && tiktok == "" {
		fmt.Fprintln(a.out, "At least one social link is required")
		return nil
	}

	profile, err := a.api.ApplyCreator(ctx, models.CreatorApplication{
		CityID:        cityID,
		InstagramLink: instagram,
		TikTokLink:    tiktok,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}

	status := profile.Status
	a.session.UpdateUser(models.UserUpdate{InfluencerStatus: &status})
	fmt.Fprintln(a.out, "Application submitted, your profile is under review")
	return nil
}
