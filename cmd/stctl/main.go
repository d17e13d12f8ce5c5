package main

import "github.com/1M4nt0/solidtime-tracker/cmd/stctl/arg"

func main() {
	arg.Execute()
}
