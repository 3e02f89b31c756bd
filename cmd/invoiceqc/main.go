package main

import "github.com/ridwanfathin/invoice-qc-service/internal/cli"

func main() {
	cli.Execute()
}
