package storage

// Config holds configuration for the object storage the audio library syncs from.
// Credentials belong in the environment or .env, not in config.json, since
// /config echoes the document back.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the sound pack.
	Bucket string `mapstructure:"bucket" default:"ttrpg-pi"`
	// Prefix is prepended to each audio file's base name to form its object key.
	Prefix string `mapstructure:"prefix" default:"audio/"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
