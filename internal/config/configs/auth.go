package configs

// Auth configures bearer token validation for advertiser routes.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	Issuer    string `env:"ISSUER" envDefault:"jeju-sns"`
}
