// cmd/strobemers/main.go
package main

import (
	"strobemers/internal/app"
	"strobemers/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
