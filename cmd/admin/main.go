package main

import "github.com/framecraft/admin/internal/cmd"

func main() {
	cmd.Execute()
}
