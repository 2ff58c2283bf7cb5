// Package log wraps [log/slog] behind a small, concurrency-safe interface
// with functional-option configuration.
//
// A [Logger] is created with [Make] and configured once, at creation:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
//	logger.Info("parser ready", slog.String("grammar", "tsv"))
//
// The zero value of [Logger] is valid and discards everything, so types can
// hold a Logger field without arranging for initialization.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's debug and is
// rendered by name rather than as slog's synthetic "DEBUG-4". Messages
// below the configured level are discarded.
//
// # Attributes
//
// [Logger.With] binds attributes carried by every subsequent message:
//
//	logger = logger.With(slog.String("component", "results"))
//	logger.Info("document parsed") // includes component=results
//
// # Context
//
// Every level has a context-aware method ([Logger.InfoContext] and
// friends). The context-unaware methods delegate to them using
// [DefaultContextProvider], which returns [context.TODO] unless replaced.
//
// # Output
//
// Two formats are supported, [FormatJSON] (the default) and [FormatText],
// each with an optional pretty mode ([WithPretty]) that colorizes output
// for terminals. Timestamps follow [WithTimeLayout], which accepts the
// named layouts of the [time] package ("RFC3339", "Kitchen", ...) or a
// custom layout string; the layout "none" disables timestamps.
//
// Package-level functions ([Info], [Error], ...) share a default logger
// that [Config] reconfigures in place.
package log
