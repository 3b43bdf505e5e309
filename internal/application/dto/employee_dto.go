package dto

import "time"

// EmployeeCreate campos escribibles de un empleado.
type EmployeeCreate struct {
	Name     string    `json:"name"`
	Position string    `json:"position"`
	HireDate time.Time `json:"hire_date"`
}

// EmployeeResponse empleado almacenado con su id generado.
type EmployeeResponse struct {
	EmployeeCreate
	EmployeeID int64 `json:"employee_id"`
}
