// Package logger builds configured slog.Logger instances for the webhook
// job: JSON or text output, level control, and static attributes.
//
//	log := logger.New(
//	    logger.WithService("webhookjob"),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
package logger
