// cmd/sawshark/main.go
package main

import (
	"sawshark/internal/app"
	"sawshark/internal/appshell"
)

func main() { appshell.Main(app.RunProgram) }
