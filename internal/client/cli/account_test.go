package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/releve-app/releve/internal/client/models"
)

func TestWallet_PrintsBalance(t *testing.T) {
	f := &fakeClient{
		loginFn:  anaLogin,
		walletFn: func(context.Context) (*models.Wallet, error) { return &models.Wallet{Balance: 250, WeeklyAllowance: 100}, nil },
	}
	a, out := newTestApp(t, f)
	loginTestApp(t, a)

	if err := a.Wallet(context.Background()); err != nil {
		t.Fatalf("Wallet err: %v", err)
	}
	if !strings.Contains(out.String(), "Balance: $250 (weekly allowance $100)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestAvatar_RejectsBadExtensionWithoutCallingServer(t *testing.T) {
	called := false
	f := &fakeClient{
		loginFn: anaLogin,
		avatarFn: func(_ context.Context, url string) (string, error) {
			called = true
			return url, nil
		},
	}
	a, out := newTestApp(t, f)
	loginTestApp(t, a)

	stubInputs(t, "https://cdn.releve.app/a.gif")

	if err := a.Avatar(context.Background()); err != nil {
		t.Fatalf("Avatar err: %v", err)
	}
	if called {
		t.Fatalf("server must not be called for a rejected format")
	}
	if !strings.Contains(out.String(), "Only PNG/JPG") {
		t.Fatalf("missing format warning:\n%s", out.String())
	}
}

func TestAvatar_UpdatesSessionUser(t *testing.T) {
	f := &fakeClient{
		loginFn:  anaLogin,
		avatarFn: func(_ context.Context, url string) (string, error) { return url, nil },
	}
	a, _ := newTestApp(t, f)
	loginTestApp(t, a)

	stubInputs(t, "https://cdn.releve.app/ana.png")

	if err := a.Avatar(context.Background()); err != nil {
		t.Fatalf("Avatar err: %v", err)
	}
	u := a.session.User()
	if u == nil || u.AvatarURL != "https://cdn.releve.app/ana.png" {
		t.Fatalf("avatar not merged into session: %+v", u)
	}
}

func TestApplyCreator_RequiresSocialLink(t *testing.T) {
	called := false
	f := &fakeClient{
		loginFn: anaLogin,
		citiesFn: func(context.Context) ([]models.City, error) {
			return []models.City{{ID: "c1", Name: "Caracas"}}, nil
		},
		applyFn: func(context.Context, models.CreatorApplication) (*models.CreatorProfile, error) {
			called = true
			return &models.CreatorProfile{Status: models.InfluencerPending}, nil
		},
	}
	a, out := newTestApp(t, f)
	loginTestApp(t, a)

	stubInputs(t, "c1", "", "") // city, no instagram, no tiktok

	if err := a.ApplyCreator(context.Background()); err != nil {
		t.Fatalf("ApplyCreator err: %v", err)
	}
	if called {
		t.Fatalf("application must not be submitted without a social link")
	}
	if !strings.Contains(out.String(), "At least one social link is required") {
		t.Fatalf("missing validation message:\n%s", out.String())
	}
}

func TestApplyCreator_SubmitsAndMergesStatus(t *testing.T) {
	var got models.CreatorApplication
	f := &fakeClient{
		loginFn: anaLogin,
		citiesFn: func(context.Context) ([]models.City, error) {
			return []models.City{{ID: "c1", Name: "Caracas"}}, nil
		},
		applyFn: func(_ context.Context, app models.CreatorApplication) (*models.CreatorProfile, error) {
			got = app
			return &models.CreatorProfile{Status: models.InfluencerPending}, nil
		},
	}
	a, out := newTestApp(t, f)
	loginTestApp(t, a)

	stubInputs(t, "c1", "https://instagram.com/ana", "")

	if err := a.ApplyCreator(context.Background()); err != nil {
		t.Fatalf("ApplyCreator err: %v", err)
	}
	if got.CityID != "c1" || got.InstagramLink != "https://instagram.com/ana" {
		t.Fatalf("unexpected application payload: %+v", got)
	}
	if u := a.session.User(); u == nil || u.InfluencerStatus != models.InfluencerPending {
		t.Fatalf("influencer status not merged: %+v", a.session.User())
	}
	if !strings.Contains(out.String(), "Application submitted") {
		t.Fatalf("missing confirmation:\n%s", out.String())
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{})

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestWhoami_PrintsProfileAndStatus(t *testing.T) {
	f := &fakeClient{
		loginFn:      anaLogin,
		influencerFn: func(context.Context) (string, error) { return models.InfluencerApproved, nil },
	}
	a, out := newTestApp(t, f)
	loginTestApp(t, a)

	if err := a.Whoami(context.Background()); err != nil {
		t.Fatalf("Whoami err: %v", err)
	}
	if !strings.Contains(out.String(), "Ana <a@b.com>") {
		t.Fatalf("missing profile line:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Creator: approved") {
		t.Fatalf("missing creator line:\n%s", out.String())
	}
}
