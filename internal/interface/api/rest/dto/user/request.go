package user

// Request is the profile-edit body. Role, correo and password are absent on
// purpose: role is fixed at registration, password changes go through the
// reset endpoint.
type Request struct {
	Names    string  `json:"nombres"`
	Surnames string  `json:"apellidos"`
	Phone    string  `json:"telefono"`
	Address  string  `json:"direccion"`
	Street   string  `json:"calle"`
	City     string  `json:"ciudad"`
	State    string  `json:"estado"`
	Photo    *string `json:"foto"`
}
