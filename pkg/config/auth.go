package config

import "time"

type AuthConfig struct {
	JWT      JWTConfig
	Password PasswordConfig
}

type JWTConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	Issuer         string
	Audience       []string
}

type PasswordConfig struct {
	BcryptCost int
}

// HiringConfig parametriza la transacción de contratación
type HiringConfig struct {
	// TempPasswordPrefix/Suffix envuelven la contraseña temporal generada
	// para cuentas nuevas de empleados
	TempPasswordPrefix string
	TempPasswordSuffix string
	DefaultRole        string
	DefaultLeaveDays   int
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET_KEY", ""),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			Issuer:         getEnv("JWT_ISSUER", "talenta"),
			Audience:       getEnvStringSlice("JWT_AUDIENCE", []string{"talenta-api"}),
		},
		Password: PasswordConfig{
			BcryptCost: getEnvInt("BCRYPT_COST", 10),
		},
	}
}

func loadHiringConfig() HiringConfig {
	return HiringConfig{
		TempPasswordPrefix: getEnv("HIRING_TEMP_PASSWORD_PREFIX", "Temp"),
		TempPasswordSuffix: getEnv("HIRING_TEMP_PASSWORD_SUFFIX", "!"),
		DefaultRole:        getEnv("HIRING_DEFAULT_ROLE", "empleado"),
		DefaultLeaveDays:   getEnvInt("HIRING_DEFAULT_LEAVE_DAYS", 15),
	}
}
