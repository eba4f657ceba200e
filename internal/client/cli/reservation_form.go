package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/reservas/internal/client/forms"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// reservationFormScreen drives the create (id == 0) and edit screens.
//
// Reference lists, and for edit the stored reservation, are fetched once
// and concurrently; the form drops any selection missing from the lists
// whatever order they arrive in. The user is then prompted for each field
// and the form is submitted until it succeeds or the user gives up.
func (a *App) reservationFormScreen(parent context.Context, id int64) error {
	ctx := a.screens.enter(parent)

	opts := []forms.ReservationOption{forms.WithClock(nowFn)}
	if id == 0 {
		opts = append(opts, forms.ExcludeInternalBranches())
	}
	form := forms.NewReservationForm(opts...)

	uid, err := a.reservationService.UserID(ctx)
	if err != nil {
		a.logger.Error(ctx, "resolving user id", "error", err)
		a.alert("Error", "No active session")
		return err
	}
	form.SetUserID(uid)

	var g errgroup.Group
	g.Go(func() error {
		vs, err := a.reservationService.AvailableVehicles(ctx)
		if err != nil {
			a.logger.Error(ctx, "loading vehicles", "error", err)
			a.alert("Error", "Could not load the vehicles")
			return err
		}
		applyIfActive(ctx, func() { form.SetVehicles(vs) })
		return nil
	})
	g.Go(func() error {
		bs, err := a.reservationService.Branches(ctx)
		if err != nil {
			a.logger.Error(ctx, "loading branches", "error", err)
			a.alert("Error", "Could not load the branches")
			return err
		}
		applyIfActive(ctx, func() { form.SetBranches(bs) })
		return nil
	})
	if id != 0 {
		g.Go(func() error {
			r, err := a.reservationService.Get(ctx, id)
			if err != nil {
				a.logger.Error(ctx, "loading reservation", "id", id, "error", err)
				a.alert("Error", "Could not load the reservation")
				return err
			}
			applyIfActive(ctx, func() { form.Load(r) })
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	title := "New reservation"
	if id != 0 {
		title = fmt.Sprintf("Edit reservation %d", id)
	}

	for {
		a.printf("%s\n", title)
		if err := a.promptReservation(form); err != nil {
			return err
		}

		err := a.submitReservation(ctx, form, id)
		if err == nil {
			return a.back(parent)
		}

		retry, perr := GetConfirm(a.reader, "Try again?", true, a.out)
		if perr != nil {
			return perr
		}
		if !retry {
			return a.back(parent)
		}
	}
}

func (a *App) submitReservation(ctx context.Context, form *forms.ReservationForm, id int64) error {
	in, err := form.Input()
	if err != nil {
		var missing *forms.MissingFieldsError
		if errors.As(err, &missing) {
			a.alert("Validation", "Please complete every field: "+strings.Join(missing.Fields, ", "))
		} else {
			a.alert("Validation", err.Error())
		}
		return err
	}

	if id == 0 {
		err = a.reservationService.Create(ctx, in)
	} else {
		err = a.reservationService.Update(ctx, id, in)
	}
	if err != nil {
		a.logger.Error(ctx, "saving reservation", "id", id, "error", err)
		a.alert("Error", "Could not save the reservation")
		return err
	}

	if id == 0 {
		a.alert("Success", "Reservation created")
	} else {
		a.alert("Success", "Reservation updated")
	}
	return nil
}

// promptReservation asks for vehicle, branch and date. An empty answer keeps
// the current value; "0" clears a selection.
func (a *App) promptReservation(form *forms.ReservationForm) error {
	st := form.State()

	a.printf("Vehicles:\n")
	for _, v := range st.Vehicles {
		a.printf("  %d) %s\n", v.ID, v.Label())
	}
	if err := a.promptSelection("Vehicle", st.VehicleID, form.SelectVehicle); err != nil {
		return err
	}

	a.printf("Branches:\n")
	for _, b := range st.Branches {
		a.printf("  %d) %s\n", b.ID, b.Nombre)
	}
	if err := a.promptSelection("Branch", st.BranchID, form.SelectBranch); err != nil {
		return err
	}

	return a.promptDate(form)
}

func (a *App) promptSelection(label string, current int64, selectFn func(int64) error) error {
	for {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, idOrEmpty(current)), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			return nil
		}
		id, err := parseSelection(v)
		if err == nil {
			err = selectFn(id)
		}
		if err != nil {
			a.alert("Invalid value", fmt.Sprintf("%s %q is not in the list", strings.ToLower(label), v))
			continue
		}
		return nil
	}
}

func (a *App) promptDate(form *forms.ReservationForm) error {
	for {
		cur := models.FormatDate(form.State().Date)
		v, err := getSimpleText(a.reader, fmt.Sprintf("Date YYYY-MM-DD [%s]", cur), a.out)
		if err != nil {
			return err
		}
		if v == "" {
			return nil
		}
		t, err := models.ParseDate(v)
		if err != nil {
			a.alert("Invalid date", "Use the YYYY-MM-DD format")
			continue
		}
		if err := form.PickDate(t); err != nil {
			a.alert("Invalid date", "The date cannot be in the past")
			continue
		}
		return nil
	}
}

func parseSelection(s string) (int64, error) {
	if s == "0" {
		return 0, nil
	}
	return parseID(s)
}

func idOrEmpty(id int64) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprint(id)
}
