// cmd/warnmap-merge/main.go
package main

import (
	"warnmap/internal/app"
	"warnmap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
