package auth

type RegisterRequest struct {
	Names    string `json:"nombres"`
	Surnames string `json:"apellidos"`
	// DNI is the national identity document number.
	NationalID string `json:"dni"`
	Email      string `json:"correo"`
	Phone      string `json:"telefono"`
	Address    string `json:"direccion"`
	Street     string `json:"calle"`
	City       string `json:"ciudad"`
	State      string `json:"estado"`
	Role       string `json:"rol"`
	Password   string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}
