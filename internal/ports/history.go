package ports

// History records which candidates the user picked, by display string.
// It is an optional convenience: callers treat every error as non-fatal.
type History interface {
	Add(display string) error
	Recent(limit int) ([]string, error)
	Close() error
}
