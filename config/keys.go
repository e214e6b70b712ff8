package config

const (
	delimiter = "."

	ConfigPrefix = "memosolve"

	ConfigMemoPrefix     = ConfigPrefix + delimiter + "memo"
	ConfigMemoBackend    = ConfigMemoPrefix + delimiter + "backend"
	ConfigMemoMaxEntries = ConfigMemoPrefix + delimiter + "max_entries"

	ConfigSearchPrefix   = ConfigPrefix + delimiter + "search"
	ConfigSearchMaxDepth = ConfigSearchPrefix + delimiter + "max_depth"

	ConfigSolveWorkers = ConfigPrefix + delimiter + "workers"
	ConfigLogLevel     = ConfigPrefix + delimiter + "log_level"
)
