package models

// Vehicle is a fleet vehicle, optionally assigned to an employee.
type Vehicle struct {
	Name         string `json:"name"`
	LicensePlate string `json:"license_plate"`
	Employee     string `json:"employee"`
}
