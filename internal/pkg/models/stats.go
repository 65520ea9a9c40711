package models

// AdminStats are the dashboard counts for the admin console.
// Driver and shipper totals are direct role-filtered counts.
type AdminStats struct {
	TotalUsers     int `json:"total_users"`
	TotalDrivers   int `json:"total_drivers"`
	TotalShippers  int `json:"total_shippers"`
	ActiveLoads    int `json:"active_loads"`
	CompletedTrips int `json:"completed_trips"`
}

// DriverStats are the per-driver dashboard counts. Earnings are the sum of
// prices over the driver's completed loads.
type DriverStats struct {
	ActiveLoads    int     `json:"active_loads"`
	CompletedTrips int     `json:"completed_trips"`
	Earnings       float64 `json:"earnings"`
}
