package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"snipyard/internal/domain"
)

const (
	DefaultCorpusPath = "~/Documents/snipyard"
	DefaultContext    = "text"
)

// Load reads an optional .env file into the environment. Missing files are
// fine; explicit environment variables always win.
func Load() {
	godotenv.Load()
}

// CorpusPath returns the corpus root from SNIPYARD_CORPUS,
// falling back to DefaultCorpusPath.
func CorpusPath() string {
	if env := os.Getenv("SNIPYARD_CORPUS"); env != "" {
		return env
	}
	return DefaultCorpusPath
}

// WikiPath returns the optional companion corpus from SNIPYARD_WIKI.
// Empty means no companion corpus.
func WikiPath() string {
	return os.Getenv("SNIPYARD_WIKI")
}

// Context returns the active language context from SNIPYARD_CONTEXT,
// falling back to DefaultContext.
func Context() string {
	if env := os.Getenv("SNIPYARD_CONTEXT"); env != "" {
		return env
	}
	return DefaultContext
}

// MaxDepth returns the recursion guard from SNIPYARD_MAX_DEPTH. Zero
// disables the guard; anything unparsable falls back to the default.
func MaxDepth() int {
	env := os.Getenv("SNIPYARD_MAX_DEPTH")
	if env == "" {
		return domain.DefaultMaxDepth
	}
	n, err := strconv.Atoi(env)
	if err != nil || n < 0 {
		return domain.DefaultMaxDepth
	}
	return n
}
