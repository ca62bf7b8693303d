package ui

import "fmt"

// WithProgress runs fn while showing a single-line progress message,
// finishing the line with a check or cross depending on the outcome.
func WithProgress(message string, fn func() error) error {
	fmt.Printf("%s...", message)

	err := fn()
	if err != nil {
		fmt.Println(" ✗")
		return err
	}

	fmt.Println(" ✓")
	return nil
}
