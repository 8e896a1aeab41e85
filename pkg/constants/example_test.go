package constants_test

import (
	"fmt"

	"github.com/agentstation/moviemap/pkg/constants"
)

// Example demonstrates the rating bounds used for input validation
func Example() {
	for _, rating := range []float64{-1, 0, 7.5, 10, 10.1} {
		ok := rating >= constants.MinRating && rating <= constants.MaxRating
		fmt.Printf("%g valid=%t\n", rating, ok)
	}
	// Output:
	// -1 valid=false
	// 0 valid=true
	// 7.5 valid=true
	// 10 valid=true
	// 10.1 valid=false
}

// Example_defaults demonstrates default values
func Example_defaults() {
	fmt.Println(constants.DefaultDatabaseFile)
	fmt.Printf("%o\n", constants.FilePermissions)
	// Output:
	// movie_database.json
	// 644
}
