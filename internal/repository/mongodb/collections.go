package mongodb

// Collection names match the documents laid down by the original
// deployment, so an existing database keeps working unchanged.
const (
	colUsers      = "Users"
	colWorkers    = "Worker_Data"
	colAttendance = "Daily_Attendance"
	colCustomers  = "Customers"
)
