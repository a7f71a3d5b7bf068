package main

import "github.com/pranavjandialfit-cloud/calorie-tracker/cmd/caltrack"

func main() {
	caltrack.Execute()
}
