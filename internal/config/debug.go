package config

import "os"

func IsDebug() bool {
	return os.Getenv("FINDOC_DEBUG") == "1"
}
