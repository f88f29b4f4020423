package scene

// DebugLog logs at debug level when Debug is set.
func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	log.Debugf(format, args...)
}
