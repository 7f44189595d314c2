package internal

import "time"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	// MaxRetries bounds the randomized search; 0 keeps the engine default.
	MaxRetries int `env:"MAX_RETRIES"`

	NotifyBatchSize    int           `env:"NOTIFY_BATCH_SIZE,required=true"`
	NotifyFlushTimeout time.Duration `env:"NOTIFY_FLUSH_TIMEOUT,required=true"`
	NotifyTimeout      time.Duration `env:"NOTIFY_TIMEOUT,required=true"`

	RestartInterval   time.Duration `env:"RESTART_INTERVAL,required=true"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`

	DebugPort int `env:"DEBUG_PORT,required=true"`
}
