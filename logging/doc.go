// Package logging wraps log/slog with the field names used across lvchirp.
//
// The numeric kernels (viterbi.Decode, dtw.Forward) never log: they are pure
// and run in tight loops. Logging is reserved for the batch drivers, which
// report per-item failures and batch summaries through a *Logger supplied in
// their options. A nil *Logger is treated as NoopLogger().
package logging
