package entity

// Client representa un cliente del banco. Inmutable después de crearse:
// no existe ruta de actualización en el dominio.
// IdentificationNumber es único; el nombre completo (Name + " " + LastName)
// se usa como clave natural en búsquedas y NO es único.
type Client struct {
	ID                   int64
	Name                 string
	LastName             string
	Address              string
	PhoneNumber          string
	Email                string
	IdentificationType   string
	IdentificationNumber string
}

// FullName devuelve la clave natural usada en resoluciones (nombre + apellido).
func (c *Client) FullName() string {
	return c.Name + " " + c.LastName
}
