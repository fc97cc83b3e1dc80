// Package logging provides structured JSON logging for showcase runs.
//
// The interactive showcase owns the terminal, so nothing may be written to
// stdout or stderr while it runs. Diagnostics go to a rotating file under
// the state directory instead, and `archives logs` reads them back.
//
// # Usage
//
//	logger, err := logging.NewLogger(dir, "INFO", logging.DefaultRotationConfig())
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	run := logger.WithSession(runID)
//	run.WithComponent("loading").Info("phase changed", "phase", "DECRYPTING ARCHIVES")
//
// Each record carries the attributes of the logger that wrote it:
//
//	{"time":"...","level":"INFO","msg":"phase changed","session_id":"...","component":"loading","phase":"DECRYPTING ARCHIVES"}
//
// # Rotation
//
// [RotatingWriter] rotates debug.log into debug.log.1, debug.log.2, ... once
// it exceeds MaxSizeMB, optionally gzipping the backups.
//
// # Reading logs
//
// [ReadLogs] parses a log file, [FilterRecords] narrows it by level, time,
// session, component or message text, and [WriteRecords] prints the result
// as text or JSON lines.
//
// When logging is disabled use [NopLogger].
package logging
