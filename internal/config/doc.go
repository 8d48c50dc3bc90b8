// Package config provides configuration structures and utilities for pwmeter.
// It defines the options shared by the analyze, generate, history and serve
// commands, and the optional .pwmeter YAML file that extends the built-in
// common password list and generator word lists.
package config
