package main

import "github.com/ugent-library/sso-login/cli"

func main() {
	cli.Execute()
}
