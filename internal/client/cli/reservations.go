package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/reservas/internal/client/models"
)

// Reservations opens the reservation list.
func (a *App) Reservations(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	return a.navigate(ctx, RouteReservations, nil)
}

// NewReservation opens the create screen.
func (a *App) NewReservation(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	return a.navigate(ctx, RouteReservationNew, nil)
}

// EditReservation opens the edit screen for id.
func (a *App) EditReservation(ctx context.Context, id int64) error {
	if !a.requireLogin() {
		return nil
	}
	return a.navigate(ctx, RouteReservationEdit, map[string]string{ParamID: strconv.FormatInt(id, 10)})
}

// DeleteReservation deletes id and shows the refreshed list. On failure the
// list is left as it was.
func (a *App) DeleteReservation(ctx context.Context, id int64) error {
	if !a.requireLogin() {
		return nil
	}
	if err := a.reservationService.Delete(ctx, id); err != nil {
		a.logger.Error(ctx, "deleting reservation", "id", id, "error", err)
		a.alert("Error", "Could not delete the reservation")
		return err
	}
	a.alert("Success", "Reservation deleted")
	return a.navigate(ctx, RouteReservations, nil)
}

// Back returns to the previous screen.
func (a *App) Back(ctx context.Context) error {
	return a.back(ctx)
}

// Home resets the history to the home screen.
func (a *App) Home(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.router.Reset(RouteHome)
	return a.render(ctx)
}

func (a *App) reservationsScreen(parent context.Context) error {
	ctx := a.screens.enter(parent)

	list, err := a.reservationService.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing reservations", "error", err)
		a.alert("Error", "Could not load the reservations")
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	a.printf("%s", renderReservations(list))
	return nil
}

func renderReservations(list []models.Reservation) string {
	if len(list) == 0 {
		return "No reservations. Type 'new' to create one.\n"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLATE\tUSER\tBRANCH\tDATE")
	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, plate(r), userName(r), branchName(r), r.Fechar)
	}
	_ = tw.Flush()
	return b.String()
}

func plate(r models.Reservation) string {
	if r.Vehiculo == nil {
		return "-"
	}
	return r.Vehiculo.Placa
}

func userName(r models.Reservation) string {
	if r.Usuario == nil {
		return "-"
	}
	return r.Usuario.Name
}

func branchName(r models.Reservation) string {
	if r.Sucursal == nil {
		return "-"
	}
	return r.Sucursal.Nombre
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
