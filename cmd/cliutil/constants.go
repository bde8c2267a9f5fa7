package cliutil

import "time"

// LedgerCommandTimeout bounds a single credits command, including the wait
// for its transaction to be mined.
const LedgerCommandTimeout = 10 * time.Minute

// TelemetryShutdownTimeout bounds flushing spans and metrics on exit.
const TelemetryShutdownTimeout = 5 * time.Second

// MaxUploadSize caps content read from a file or stdin for upload.
const MaxUploadSize = 32 << 20
