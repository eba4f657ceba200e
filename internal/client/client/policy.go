package client

// Endpoint names one backend operation.
type Endpoint string

const (
	EndpointLogin             Endpoint = "login"
	EndpointGetProfile        Endpoint = "get_profile"
	EndpointUpdateProfile     Endpoint = "update_profile"
	EndpointDocumentTypes     Endpoint = "document_types"
	EndpointListReservations  Endpoint = "list_reservations"
	EndpointGetReservation    Endpoint = "get_reservation"
	EndpointCreateReservation Endpoint = "create_reservation"
	EndpointUpdateReservation Endpoint = "update_reservation"
	EndpointDeleteReservation Endpoint = "delete_reservation"
	EndpointVehicles          Endpoint = "available_vehicles"
	EndpointBranches          Endpoint = "branches"
)

// AuthPolicy tells which endpoints get an Authorization: Bearer header.
type AuthPolicy map[Endpoint]bool

// ObservedAuthPolicy attaches the token only to the reservation
// list/fetch/delete calls, as the deployed backend expects today.
func ObservedAuthPolicy() AuthPolicy {
	return AuthPolicy{
		EndpointListReservations:  true,
		EndpointGetReservation:    true,
		EndpointDeleteReservation: true,
	}
}

// AllEndpointsAuthPolicy attaches the token to every call but login.
func AllEndpointsAuthPolicy() AuthPolicy {
	p := AuthPolicy{}
	for _, e := range []Endpoint{
		EndpointGetProfile, EndpointUpdateProfile, EndpointDocumentTypes,
		EndpointListReservations, EndpointGetReservation, EndpointCreateReservation,
		EndpointUpdateReservation, EndpointDeleteReservation,
		EndpointVehicles, EndpointBranches,
	} {
		p[e] = true
	}
	return p
}

func (p AuthPolicy) Requires(e Endpoint) bool {
	return p[e]
}
