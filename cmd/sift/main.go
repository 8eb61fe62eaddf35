// cmd/sift/main.go
package main

import (
	"sift/internal/app"
	"sift/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
