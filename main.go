package main

import "github.com/gaurav-prasanna/seoaudit/cmd"

func main() {
	cmd.Execute()
}
