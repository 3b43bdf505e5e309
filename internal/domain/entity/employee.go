package entity

import "time"

// Employee representa un empleado del banco.
// Name se usa como clave natural en la emisión de préstamos y no está
// garantizado como único: la resolución toma la primera coincidencia.
type Employee struct {
	ID       int64
	Name     string
	Position string
	HireDate time.Time
}
