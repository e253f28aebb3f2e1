package boltstore

import "time"

type Config struct {
	Path        string        `env:"MEMID_BOLT_PATH" envDefault:"memid.db"`   // Path is the database file, created if missing.
	Bucket      string        `env:"MEMID_BOLT_BUCKET" envDefault:"ids"`      // Bucket holds one key per identifier.
	OpenTimeout time.Duration `env:"MEMID_BOLT_OPEN_TIMEOUT" envDefault:"1s"` // OpenTimeout bounds waiting for the file lock.
}
