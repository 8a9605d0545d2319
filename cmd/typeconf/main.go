// FILE: typeconf/cmd/typeconf/main.go
package main

import (
	"go.uber.org/zap"
)

func main() {
	if err := Execute(); err != nil {
		zap.S().Fatalw("command failed", "error", err)
	}
}
