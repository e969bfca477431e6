package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/olilab/internal/client/models"
)

// ErrEmptyTitle is returned when the new title is blank.
var ErrEmptyTitle = errors.New("title must not be empty")

// ShowSettings prints the current branding settings.
func (a *App) ShowSettings(ctx context.Context) error {
	s := a.settings.Settings()
	logo := s.LogoURL
	if logo == "" {
		logo = "(none)"
	}
	printlnFn(fmt.Sprintf("Title: %s\nLogo:  %s", s.Title, logo))
	return nil
}

// SetTitle changes the title; with an empty argument the user is prompted.
func (a *App) SetTitle(ctx context.Context, title string) error {
	if title == "" {
		var err error
		title, err = getSimpleText(a.reader, "Enter new title", a.out)
		if err != nil {
			return err
		}
	}
	if title == "" {
		return ErrEmptyTitle
	}

	a.settings.Update(ctx, patchTitle(title))
	return a.ShowSettings(ctx)
}

// SetLogo changes the logo URL; with an empty argument the user is prompted
// and an empty answer clears the logo.
func (a *App) SetLogo(ctx context.Context, logoURL string) error {
	if logoURL == "" {
		var err error
		logoURL, err = getSimpleText(a.reader, "Enter logo URL (empty to clear)", a.out)
		if err != nil {
			return err
		}
	}

	a.settings.Update(ctx, patchLogo(logoURL))
	return a.ShowSettings(ctx)
}

func patchTitle(title string) models.SettingsPatch {
	return models.SettingsPatch{Title: &title}
}

func patchLogo(logoURL string) models.SettingsPatch {
	return models.SettingsPatch{LogoURL: &logoURL}
}
