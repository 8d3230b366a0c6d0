package database

import "fmt"

// Config holds database configuration.
type Config struct {
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        string `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"stocks"`
	Password    string `env:"DB_PASSWORD" envDefault:"stocks"`
	DBName      string `env:"DB_NAME" envDefault:"stocks"`
	SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	Migrations  string `env:"DB_MIGRATIONS" envDefault:"file://migrations"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// DSN returns the PostgreSQL connection string used by GORM.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// URL returns the PostgreSQL URL used by golang-migrate.
func (c Config) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}
