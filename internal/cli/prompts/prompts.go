package prompts

import "github.com/charmbracelet/huh"

// Text prompts for text input with an optional default value
func Text(title string, defaultVal string) (string, error) {
	var value string
	if defaultVal != "" {
		value = defaultVal
	}

	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()

	if err != nil {
		return defaultVal, err
	}

	if value == "" {
		return defaultVal, nil
	}

	return value, nil
}

// Secret prompts for sensitive input without echoing it
func Secret(title string) (string, error) {
	var value string

	err := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value).
		Run()

	if err != nil {
		return "", err
	}

	return value, nil
}

// Confirm prompts for yes/no confirmation
func Confirm(title string, defaultVal bool) (bool, error) {
	value := defaultVal

	err := huh.NewConfirm().
		Title(title).
		Value(&value).
		Run()

	if err != nil {
		return defaultVal, err
	}

	return value, nil
}
