package devserver

import "github.com/dmitrijs2005/reservas/internal/client/models"

// Reference data shared by the memory store and the seed migration.
const (
	seedUserID          int64 = 12
	firstReservationID  int64 = 100
	internalBranchID    int64 = 13
	seedReservationDate       = "2026-11-02"
)

var (
	seedDocumentTypes = []models.DocumentType{
		{ID: 1, Nombre: "DNI"},
		{ID: 2, Nombre: "Pasaporte"},
		{ID: 3, Nombre: "Carnet de extranjeria"},
	}

	seedVehicles = []models.Vehicle{
		{ID: 1, Placa: "ABC-101", Marca: "Toyota", Modelo: "Hilux"},
		{ID: 2, Placa: "ABC-102", Marca: "Toyota", Modelo: "Yaris"},
		{ID: 3, Placa: "BCD-201", Marca: "Nissan", Modelo: "Frontier"},
		{ID: 4, Placa: "BCD-202", Marca: "Nissan", Modelo: "Versa"},
		{ID: 5, Placa: "CDE-301", Marca: "Hyundai", Modelo: "Tucson"},
		{ID: 6, Placa: "CDE-302", Marca: "Kia", Modelo: "Rio"},
	}

	seedBranches = []models.Branch{
		{ID: 1, Nombre: "Centro"},
		{ID: 2, Nombre: "Norte"},
		{ID: 3, Nombre: "Sur"},
		{ID: internalBranchID, Nombre: "Taller", Internal: true},
	}

	seedProfile = models.Profile{
		Name:             "Demo",
		Apellido:         "Usuario",
		NumeroDocumento:  "12345678",
		NumeroTelefonico: "999888777",
		TipoDocumentoID:  1,
	}
)
