package domain

// Maximum column lengths for vehicle fields, mirrored by the schema.
const (
	VehicleNameMaxLen  = 255
	VehicleBrandMaxLen = 150
)

// MinVehicleYear is the oldest model year the registry accepts.
const MinVehicleYear = 1950

// Vehicle represents a registered vehicle.
type Vehicle struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// ValidateVehicle checks a candidate vehicle payload and returns the list of
// human-readable problems, in a fixed order. An empty list means the payload
// is valid. All checks run; they do not short-circuit.
func ValidateVehicle(name, brand string, year int) []string {
	messages := []string{}

	if name == "" {
		messages = append(messages, "name must not be empty")
	}
	if brand == "" {
		messages = append(messages, "brand must not be empty")
	}
	if year < MinVehicleYear {
		messages = append(messages, "invalid year")
	}

	return messages
}
