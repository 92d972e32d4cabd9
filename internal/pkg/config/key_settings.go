package config

// Reference key material: two 132-bit primes giving a 264-bit modulus
const (
	DefaultPrimeP         = "3615415881585117908550243505309785526231"
	DefaultPrimeQ         = "4384165182867240584805930970951575013697"
	DefaultPublicExponent = 65537
)

// KeySettings holds the prime pair and public exponent used for key derivation.
// Primes are decimal strings so that they can exceed any native integer width.
type KeySettings struct {
	PrimeP         string `mapstructure:"prime_p" validate:"required,prime"`
	PrimeQ         string `mapstructure:"prime_q" validate:"required,prime,nefield=PrimeP"`
	PublicExponent int    `mapstructure:"public_exponent" validate:"required,rsaexponent"`
}

// Validate checks that both primes are probable primes, distinct, and that the exponent is usable
func (s *KeySettings) Validate() error {
	return validateStruct("KeySettings", s)
}
