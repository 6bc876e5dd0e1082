package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	BackendBaseURL        string
	BackendToken          string
	BackendRole           string
	GeocoderBaseURL       string
	FreeDeliveryThreshold string
	OrderSyncSchedule     string
}
