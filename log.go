package nurikabe

import "go.uber.org/zap"

// nopLogger is the default logger for a Grid that isn't given one
// explicitly via WithLogger: diagnostics are opt-in, never a global
// switch (spec §9 design notes).
func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
