package dto

// ClientCreate campos escribibles de un cliente (body de POST /api/clients).
type ClientCreate struct {
	Name                 string `json:"name"`
	LastName             string `json:"last_name"`
	Address              string `json:"address"`
	PhoneNumber          string `json:"phone_number"`
	Email                string `json:"email"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
}

// ClientResponse cliente almacenado: los campos de creación más el id generado.
type ClientResponse struct {
	ClientCreate
	IDClient int64 `json:"id_client"`
}

// ClientNameResponse proyección id + nombre completo (GET /api/clients/names).
type ClientNameResponse struct {
	IDClient int64  `json:"id_client"`
	FullName string `json:"full_name"`
}
