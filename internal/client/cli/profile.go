package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/reservas/internal/client/forms"
	"golang.org/x/sync/errgroup"
)

var profileLabels = map[forms.ProfileField]string{
	forms.FieldName:             "Name",
	forms.FieldApellido:         "Surname",
	forms.FieldNumeroDocumento:  "Document number",
	forms.FieldNumeroTelefonico: "Phone number",
	forms.FieldTipoDocumento:    "Document type",
	forms.FieldEmail:            "Email",
}

// Profile opens the profile screen.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	return a.navigate(ctx, RouteProfile, nil)
}

// profileScreen loads the profile and the document types in parallel. Each
// load alerts on its own failure; whatever did load is still shown and the
// form stays editable.
func (a *App) profileScreen(parent context.Context) error {
	ctx := a.screens.enter(parent)
	form := forms.NewProfileForm()

	var g errgroup.Group
	g.Go(func() error {
		p, err := a.profileService.Profile(ctx)
		if err != nil {
			a.logger.Error(ctx, "loading profile", "error", err)
			a.alert("Error", "Could not load the profile")
			return err
		}
		applyIfActive(ctx, func() { form.SetProfile(p) })
		return nil
	})
	g.Go(func() error {
		ds, err := a.profileService.DocumentTypes(ctx)
		if err != nil {
			a.logger.Error(ctx, "loading document types", "error", err)
			a.alert("Error", "Could not load the document types")
			return err
		}
		applyIfActive(ctx, func() { form.SetDocumentTypes(ds) })
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	a.printProfile(form)

	edit, err := GetConfirm(a.reader, "Edit profile?", false, a.out)
	if err != nil || !edit {
		return err
	}

	for _, field := range forms.EditableProfileFields {
		if err := a.promptProfileField(form, field); err != nil {
			return err
		}
	}

	if err := a.profileService.Save(ctx, form.Profile()); err != nil {
		a.logger.Error(ctx, "saving profile", "error", err)
		a.alert("Error", "Could not update the profile")
		return err
	}

	a.notice.Show("Profile updated")
	a.printf("Profile updated.\n")
	return nil
}

func (a *App) printProfile(form *forms.ProfileForm) {
	var b strings.Builder
	b.WriteString("Profile\n")
	for _, field := range append(slices.Clone(forms.EditableProfileFields), forms.FieldEmail) {
		suffix := ""
		if field == forms.FieldEmail {
			suffix = " (read-only)"
		}
		fmt.Fprintf(&b, "  %-16s %s%s\n", profileLabels[field]+":", form.Value(field), suffix)
	}
	a.printf("%s", b.String())
}

// promptProfileField asks for one field until the value is accepted. An
// empty answer keeps the current value.
func (a *App) promptProfileField(form *forms.ProfileForm, field forms.ProfileField) error {
	if field == forms.FieldTipoDocumento {
		for _, d := range form.DocumentTypes() {
			a.printf("  %d) %s\n", d.ID, d.Nombre)
		}
	}

	for {
		prompt := fmt.Sprintf("%s [%s]", profileLabels[field], form.Value(field))
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v == "" {
			return nil
		}
		if err := form.Set(field, v); err != nil {
			a.alert("Invalid value", err.Error())
			continue
		}
		return nil
	}
}
