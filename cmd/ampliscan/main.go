// cmd/ampliscan/main.go
package main

import (
	"ampliscan/internal/app"
	"ampliscan/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
