package cmd

// Config carries the environment-driven settings for the service.
// StrictStatusCatalog controls the startup check that every workflow
// transition target exists in the status catalog: on in production so a
// misconfigured catalog fails the boot, off in development where the
// record-but-skip behavior is exercised deliberately.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	StrictStatusCatalog bool
}
