// pkg/platform/utils.go
package platform

// CommandExists checks if a command is available through the runner
func CommandExists(r Runner, cmd string) bool {
	_, err := r.LookPath(cmd)
	return err == nil
}

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
